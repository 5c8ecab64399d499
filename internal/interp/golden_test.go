package interp_test

import (
	"testing"

	"github.com/funvibe/loxvm/internal/scripttest"
)

const goldenDir = "../../testdata"

func TestGoldenFixtures(t *testing.T) {
	for _, fi := range scripttest.SourceFiles(t, goldenDir) {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			scripttest.Run(t, fi, goldenDir)
		})
	}
}

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info("geodata")
	for _, want := range []string{"geodata v" + Version, "Git Commit:", "Build Date:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() missing %q:\n%s", want, info)
		}
	}
}

package banner

import (
	"strings"
	"testing"

	"github.com/gookit/color"
)

func TestBannerHasVersion(t *testing.T) {
	got := color.ClearCode(Banner("v1.2.3"))
	if !strings.HasPrefix(got, art) {
		t.Errorf("Banner() = %q, missing art", got)
	}
	if !strings.Contains(got, "v1.2.3") {
		t.Errorf("Banner() = %q, missing version", got)
	}
}

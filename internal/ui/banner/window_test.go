package banner

import (
	"image/color"
	"net/url"
	"testing"

	"promotimer/internal/core/promo"
	"promotimer/internal/core/trigger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestBanner(t *testing.T) (*Window, *[]trigger.Target) {
	t.Helper()
	app := test.NewTempApp(t)
	banner := New(app, Config{Title: "Offer ends in", CTALabel: "Claim offer"})

	var targets []trigger.Target
	banner.SetOnInteract(func(target trigger.Target) trigger.Outcome {
		targets = append(targets, target)
		return trigger.Outcome{Issued: true, PreventDefault: target == trigger.TargetCTA}
	})
	return banner, &targets
}

func TestBannerRoutesTapsToTargets(t *testing.T) {
	banner, targets := newTestBanner(t)

	test.Tap(banner.ctaButton)
	test.Tap(banner.tapArea)

	assert.Equal(t, []trigger.Target{trigger.TargetCTA, trigger.TargetWidget}, *targets)
}

func TestBannerRenderAppliesDigitsAndColor(t *testing.T) {
	banner, _ := newTestBanner(t)

	banner.Render(promo.Frame{Digits: [4]string{"07", "03", "04", "05"}, Color: "#ff3366"})
	for i, want := range []string{"07", "03", "04", "05"} {
		assert.Equal(t, want, banner.digits[i].Text)
		assert.Equal(t, color.NRGBA{R: 0xff, G: 0x33, B: 0x66, A: 0xff}, banner.digits[i].Color)
	}

	banner.Render(promo.Frame{Digits: [4]string{"07", "03", "04", "04"}, Color: "not-a-color"})
	assert.Equal(t, "04", banner.digits[3].Text)
	assert.Equal(t, defaultDigitColor, banner.digits[3].Color)
}

func TestBannerRemove(t *testing.T) {
	banner, _ := newTestBanner(t)
	banner.Show()
	banner.Remove()
	banner.Show()

	assert.True(t, banner.Removed())
}

func TestParseColor(t *testing.T) {
	parsed, ok := parseColor("#0f8")
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0xff, B: 0x88, A: 0xff}, parsed)

	parsed, ok = parseColor(" #102030 ")
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, parsed)

	for _, hint := range []string{"", "red", "#12345", "#gggggg"} {
		_, ok := parseColor(hint)
		assert.False(t, ok, hint)
	}
}

func newLinkedBanner(t *testing.T, bound bool) (*Window, *[]string) {
	t.Helper()
	app := test.NewTempApp(t)
	banner := New(app, Config{Title: "Offer ends in", CTALabel: "Claim offer", CTAURL: "https://example.com/offer"})
	banner.SetOnInteract(func(target trigger.Target) trigger.Outcome {
		return trigger.Outcome{Issued: bound, PreventDefault: bound && target == trigger.TargetCTA}
	})

	var opened []string
	banner.openURL = func(link *url.URL) error {
		opened = append(opened, link.String())
		return nil
	}
	return banner, &opened
}

func TestBoundCTADoesNotNavigate(t *testing.T) {
	banner, opened := newLinkedBanner(t, true)

	test.Tap(banner.ctaButton)
	test.Tap(banner.tapArea)

	assert.Empty(t, *opened)
}

func TestUnboundCTAFollowsLink(t *testing.T) {
	banner, opened := newLinkedBanner(t, false)

	test.Tap(banner.ctaButton)
	test.Tap(banner.tapArea)
	banner.Activate(trigger.TargetCTA)

	assert.Equal(t, []string{"https://example.com/offer", "https://example.com/offer"}, *opened)
}

func TestCTAWithoutLinkDoesNothing(t *testing.T) {
	banner, _ := newTestBanner(t)
	banner.openURL = func(*url.URL) error {
		t.Fatal("no link configured")
		return nil
	}

	banner.onInteract = nil
	test.Tap(banner.ctaButton)
}

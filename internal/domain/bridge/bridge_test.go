package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/protodex/internal/ports"
)

func TestToTarget(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      string
	}{
		{"zero arity bare name", "title", "title"},
		{"zero arity declaration", "- (NSString *)title;", "title"},
		{"zero arity class method", "+ (instancetype)sharedManager;", "sharedManager"},
		{"single keyword", "- (void)drawRect:(NSRect)rect;", "drawRect_"},
		{"two keywords with pointer types",
			"- (void)drawForegroundForLayer:(CALayer *)layer options:(NSDictionary *)options;",
			"drawForegroundForLayer_options_"},
		{"typeless selector", "drawForegroundForLayer:options:", "drawForegroundForLayer_options_"},
		{"typed selector without marker",
			"drawForegroundForLayer:(T *)layer options:(U *)options",
			"drawForegroundForLayer_options_"},
		{"availability macro stripped", "- (void)legacyCall NS_UNAVAILABLE;", "legacyCall"},
		{"attribute stripped", "- (void)oldStyle __attribute__((unavailable(\"gone\")));", "oldStyle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTarget(tt.signature))
		})
	}
}

func TestToSelector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zero arity unchanged", "title", "title"},
		{"single keyword", "drawRect_", "drawRect:"},
		{"two keywords", "drawForegroundForLayer_options_", "drawForegroundForLayer:options:"},
		{"three keywords", "tableView_objectValueFor_row_", "tableView:objectValueFor:row:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToSelector(tt.input, ArityUnchecked)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSelectorArityValidation(t *testing.T) {
	// Matching arity passes.
	got, err := ToSelector("doSomething_withOther_", 2)
	require.NoError(t, err)
	assert.Equal(t, "doSomething:withOther:", got)

	// Mismatch carries both counts: the name encodes 2, the caller said 3.
	_, err = ToSelector("doSomething_withOther_", 3)
	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 3, arityErr.Actual)

	// Zero-arity names validate too.
	_, err = ToSelector("title", 1)
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 0, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Actual)
}

func TestRoundTrip(t *testing.T) {
	// ToSelector(ToTarget(typeless selector)) must recover the selector for
	// every arity.
	selectors := map[string]int{
		"title":                           0,
		"drawRect:":                       1,
		"drawForegroundForLayer:options:": 2,
		"tableView:objectValueFor:row:":   3,
		"a:b:c:d:":                        4,
	}
	for sel, arity := range selectors {
		got, err := ToSelector(ToTarget(sel), arity)
		require.NoError(t, err, "selector %q", sel)
		assert.Equal(t, sel, got)
	}
}

func TestSelectorSkeleton(t *testing.T) {
	assert.Equal(t, "drawForegroundForLayer:options:",
		SelectorSkeleton("- (void)drawForegroundForLayer:(CALayer *)layer options:(NSDictionary *)options;"))
	assert.Equal(t, "title", SelectorSkeleton("- (NSString *)title;"))
	assert.Equal(t, "drawRect:", SelectorSkeleton("+ (void)drawRect:(NSRect)rect;"))
}

func TestFormatSignature(t *testing.T) {
	sig, err := FormatSignature("drawRect:inView:", []Param{
		{Type: "NSRect", Label: "rect"},
		{Type: "NSView *", Label: "view"},
	}, "void", ports.InstanceMethod)
	require.NoError(t, err)
	assert.Equal(t, "- (void)drawRect:(NSRect)rect inView:(NSView *)view;", sig)

	// Formatted output bridges back to the same target name.
	assert.Equal(t, "drawRect_inView_", ToTarget(sig))

	sig, err = FormatSignature("sharedManager", nil, "instancetype", ports.ClassMethod)
	require.NoError(t, err)
	assert.Equal(t, "+ (instancetype)sharedManager;", sig)
}

func TestFormatSignatureArityMismatch(t *testing.T) {
	_, err := FormatSignature("drawRect:inView:", []Param{{Type: "NSRect", Label: "rect"}}, "void", ports.InstanceMethod)
	var arityErr *ArityError
	require.True(t, errors.As(err, &arityErr))
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Actual)

	_, err = FormatSignature("title", []Param{{Type: "id", Label: "x"}}, "void", ports.InstanceMethod)
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 0, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Actual)
}

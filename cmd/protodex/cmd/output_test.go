package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corey/protodex/internal/domain/header"
	"github.com/corey/protodex/internal/ports"
)

func TestSortedNames(t *testing.T) {
	set := map[string]bool{"zebra_": true, "apple": true, "mid_point_": true}
	assert.Equal(t, []string{"apple", "mid_point_", "zebra_"}, sortedNames(set))
	assert.Empty(t, sortedNames(nil))
}

func TestFormatMethodInfo(t *testing.T) {
	out := formatMethodInfo("drawRect_inView_", &ports.MethodRecord{
		Name:          "drawRect",
		ReturnType:    "void",
		Kind:          ports.InstanceMethod,
		Parameters:    []string{"NSRect rect", "NSView * view"},
		FullSignature: "- (void)drawRect:(NSRect)rect inView:(NSView *)view;",
	})
	assert.Contains(t, out, "drawRect_inView_")
	assert.Contains(t, out, "- (void)drawRect:(NSRect)rect inView:(NSView *)view;")
	assert.Contains(t, out, "NSRect rect, NSView * view")
	assert.NotContains(t, out, "deprecated")
}

func TestFormatDocument(t *testing.T) {
	doc := header.New().Parse(`@protocol Drawable <NSObject>
- (void)draw;
@optional
- (void)prepareForReuse;
@end`)
	out := formatDocument(doc)
	assert.Contains(t, out, "@protocol Drawable")
	assert.Contains(t, out, "<NSObject>")
	assert.Contains(t, out, "required  - (void)draw;")
	assert.Contains(t, out, "optional  - (void)prepareForReuse;")
}

func TestFormatDocumentError(t *testing.T) {
	out := formatDocument(&ports.HeaderDocument{Err: "read Missing.h: no such file"})
	assert.Contains(t, out, "read Missing.h")
}

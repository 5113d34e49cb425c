package header

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/protodex/internal/ports"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParseInterfaces(t *testing.T) {
	doc := New().Parse("@interface AppController : NSObject\n@end\n@interface DocView : NSView\n@end\n")
	require.Len(t, doc.Interfaces, 2)
	assert.Equal(t, "AppController", doc.Interfaces[0].Name)
	assert.Equal(t, "NSObject", doc.Interfaces[0].Superclass)
	assert.Equal(t, "DocView", doc.Interfaces[1].Name)
	assert.Equal(t, "NSView", doc.Interfaces[1].Superclass)
}

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantType  string
		wantAttrs []string
	}{
		{
			name:      "simple scalar",
			input:     "@property(nonatomic) BOOL enabled;",
			wantName:  "enabled",
			wantType:  "BOOL",
			wantAttrs: []string{"nonatomic"},
		},
		{
			name:      "pointer star belongs to declarator",
			input:     "@property(nonatomic, copy) NSString *title;",
			wantName:  "title",
			wantType:  "NSString",
			wantAttrs: []string{"nonatomic", "copy"},
		},
		{
			name:      "generic type preserved through last-whitespace split",
			input:     "@property(nonatomic, readonly) NSArray<NSString *> *tags;",
			wantName:  "tags",
			wantType:  "NSArray<NSString *>",
			wantAttrs: []string{"nonatomic", "readonly"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New().Parse(tt.input)
			require.Len(t, doc.Properties, 1)
			p := doc.Properties[0]
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantType, p.Type)
			assert.Equal(t, tt.wantAttrs, p.Attributes)
		})
	}
}

func TestParseMethods(t *testing.T) {
	doc := New().Parse(`
- (NSString *)title;
- (void)drawForegroundForLayer:(CALayer *)layer options:(NSDictionary *)options;
+ (instancetype)sharedManager;
`)
	require.Len(t, doc.Methods, 3)

	byName := map[string]*ports.MethodRecord{}
	for _, m := range doc.Methods {
		byName[m.Name] = m
	}

	title := byName["title"]
	require.NotNil(t, title)
	assert.Equal(t, "NSString *", title.ReturnType)
	assert.Equal(t, ports.InstanceMethod, title.Kind)
	assert.Empty(t, title.Parameters)

	draw := byName["drawForegroundForLayer"]
	require.NotNil(t, draw)
	assert.Equal(t, "void", draw.ReturnType)
	assert.Equal(t, []string{"CALayer * layer", "NSDictionary * options"}, draw.Parameters)
	assert.Equal(t,
		"- (void)drawForegroundForLayer:(CALayer *)layer options:(NSDictionary *)options;",
		draw.FullSignature)

	shared := byName["sharedManager"]
	require.NotNil(t, shared)
	assert.Equal(t, ports.ClassMethod, shared.Kind)
	assert.Equal(t, "instancetype", shared.ReturnType)
}

func TestParseAnnotatedMethodName(t *testing.T) {
	doc := New().Parse("- (void)legacyCall NS_UNAVAILABLE;\n")
	require.Len(t, doc.Methods, 1)
	assert.Equal(t, "legacyCall", doc.Methods[0].Name)
	// The full signature keeps the macro — the deprecation pass needs it.
	assert.Contains(t, doc.Methods[0].FullSignature, "NS_UNAVAILABLE")
}

func TestTopLevelExcludesProtocolBodies(t *testing.T) {
	doc := New().Parse(`
- (void)standalone;
@protocol Drawable
- (void)draw;
@end
`)
	require.Len(t, doc.Methods, 1)
	assert.Equal(t, "standalone", doc.Methods[0].Name)
	require.Len(t, doc.Protocols, 1)
	require.Len(t, doc.Protocols[0].RequiredMethods, 1)
	assert.Equal(t, "draw", doc.Protocols[0].RequiredMethods[0].Name)
}

func TestParseNeverFailsOnGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"not a header at all",
		"@protocol",
		"@interface : ;;;",
		"- (broken",
		"@property(;",
	} {
		doc := New().Parse(input)
		require.NotNil(t, doc, "input %q", input)
		assert.Empty(t, doc.Err)
	}
}

func TestParseDiagnostics(t *testing.T) {
	// "@protocol" present but no parseable block: zero records plus a note.
	doc := New().Parse("@protocol Incomplete\n- (void)a;\n")
	assert.Empty(t, doc.Protocols)
	assert.Contains(t, doc.Diagnostics, "protocol section present but unparsed")

	// Clean zero matches: no note.
	doc = New().Parse("- (void)a;\n")
	assert.Empty(t, doc.Diagnostics)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Drawable.h")
	writeFile(t, path, "@protocol Drawable\n- (void)draw;\n@end\n")

	doc := New().ParseFile(path)
	assert.Empty(t, doc.Err)
	require.Len(t, doc.Protocols, 1)

	// Read failure surfaces as Err, never as a panic or error return.
	missing := New().ParseFile(filepath.Join(dir, "Nope.h"))
	assert.NotEmpty(t, missing.Err)
	assert.Empty(t, missing.Protocols)
}

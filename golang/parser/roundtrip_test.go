package parser

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/token"
)

var testcasesDir string
var testFilter string

func init() {
	flag.StringVar(&testcasesDir, "testcases", "testdata", "directory containing .go test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestRoundTrip_Testcases parses every .go file under the testcases
// directory. Each file must parse without errors, keep every token, and
// produce the same tree when its tokens are respelled and parsed again.
// Point it at a larger tree with: go test ./golang/parser -testcases=$GOROOT/src/io
func TestRoundTrip_Testcases(t *testing.T) {
	var files []string
	err := filepath.WalkDir(testcasesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".go") {
			if testFilter != "" && !strings.Contains(path, testFilter) {
				return nil
			}
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testcases directory: %v", err)
	}
	if len(files) == 0 {
		t.Skipf("no .go files found in %s", testcasesDir)
	}

	for _, file := range files {
		relPath, err := filepath.Rel(testcasesDir, file)
		if err != nil {
			relPath = filepath.Base(file)
		}
		testName := strings.ReplaceAll(relPath, string(filepath.Separator), "_")
		testName = strings.TrimSuffix(testName, ".go")

		t.Run(testName, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	tokens, _ := lexer.Tokenize(source, filename)
	orig, errs := ParseFile(tokens)
	if len(errs) != 0 {
		t.Fatalf("parse errors:\n%s", formatErrors(errs))
	}

	got := orig.Tokens()
	if len(got) != len(tokens)-1 {
		t.Fatalf("tree holds %d tokens, source has %d", len(got), len(tokens)-1)
	}

	respelled := respell(tokens)
	again, errs := ParseSource(respelled, filename)
	if len(errs) != 0 {
		t.Errorf("respelled source has parse errors:\n%s", formatErrors(errs))
		t.Logf("\n=== Respelled source ===\n%s", respelled)
		return
	}

	diffs := compareNodeCounts(countNodeKinds(orig), countNodeKinds(again))
	if len(diffs) > 0 {
		t.Errorf("node count mismatch after respelling:\n%s", strings.Join(diffs, "\n"))
	}
}

// respell writes tokens back as source text, one space between tokens and a
// newline for every inserted separator.
func respell(tokens []token.Token) []byte {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case token.EOF:
		case token.SyntheticSemicolon:
			sb.WriteString("\n")
		default:
			sb.WriteString(tok.Text())
			sb.WriteString(" ")
		}
	}
	return []byte(sb.String())
}

func countNodeKinds(root *Node) map[NodeKind]int {
	counts := make(map[NodeKind]int)
	root.Walk(func(n *Node) bool {
		counts[n.Kind]++
		return true
	})
	return counts
}

func compareNodeCounts(orig, again map[NodeKind]int) []string {
	kinds := make(map[NodeKind]bool)
	for k := range orig {
		kinds[k] = true
	}
	for k := range again {
		kinds[k] = true
	}
	var diffs []string
	for k := range kinds {
		if orig[k] != again[k] {
			diffs = append(diffs, fmt.Sprintf("  %-24s original=%d respelled=%d", k, orig[k], again[k]))
		}
	}
	sort.Strings(diffs)
	return diffs
}

func formatErrors(errs ErrorList) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  - " + err.Error()
	}
	return strings.Join(lines, "\n")
}

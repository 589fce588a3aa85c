package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"automapper/catalog"
	"automapper/internal/diagnostic"
	"automapper/internal/match"
	"automapper/options"
	"automapper/ref"
)

// maxSuggestions bounds the "did you mean" list of a gap.
const maxSuggestions = 3

// ErrIncomplete is matched by every *GapError.
var ErrIncomplete = errors.New("incomplete mapping")

// Gap is a destination property a mapping could not fill.
type Gap struct {
	Code        string
	Message     string
	Pair        string
	Property    ref.Property
	Suggestions []string
}

func (g Gap) String() string {
	return g.diagnostic().String()
}

func (g Gap) diagnostic() diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticWarning,
		Code:        g.Code,
		Message:     g.Message,
		Pair:        g.Pair,
		Suggestions: g.Suggestions,
	}
	if !g.Property.IsZero() {
		d.Property = g.Property.String()
	}

	return d
}

// Result is the outcome of MapWithReport.
type Result struct {
	Value any
	Gaps  []Gap
}

// Complete reports whether no gaps were recorded.
func (r Result) Complete() bool {
	return len(r.Gaps) == 0
}

// GapError is returned by Map in strict mode. The mapped value is still
// returned next to it.
type GapError struct {
	Gaps []Gap
}

func (e *GapError) Error() string {
	parts := make([]string, 0, len(e.Gaps))
	for _, g := range e.Gaps {
		parts = append(parts, g.String())
	}

	return fmt.Sprintf("%s: %s", ErrIncomplete, strings.Join(parts, "; "))
}

func (e *GapError) Is(target error) bool {
	return target == ErrIncomplete
}

// recorder collects gaps of one Map call. Elements of object arrays may be
// mapped concurrently, so it locks.
type recorder struct {
	mu       sync.Mutex
	enabled  options.GapCategory
	logger   *slog.Logger
	recorded []Gap
}

func newRecorder(enabled options.GapCategory, logger *slog.Logger) *recorder {
	return &recorder{enabled: enabled, logger: logger}
}

func (r *recorder) add(category options.GapCategory, g Gap) {
	if r == nil || !r.enabled.Has(category) {
		return
	}

	g.Code = category.Code()
	r.logger.Debug("mapping gap",
		slog.String("code", g.Code),
		slog.String("pair", g.Pair),
		slog.String("property", g.Property.String()),
		slog.String("message", g.Message),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.recorded = append(r.recorded, g)
}

func (r *recorder) len() int {
	if r == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.recorded)
}

func (r *recorder) gaps() []Gap {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Gap(nil), r.recorded...)
}

// gapContext names the pair and property a gap is reported against.
type gapContext struct {
	pair string
	prop *catalog.Property
}

func (g gapContext) gap(msg string, args ...any) Gap {
	out := Gap{Pair: g.pair, Message: fmt.Sprintf(msg, args...)}
	if g.prop != nil {
		out.Property = g.prop.Ref
	}

	return out
}

func pairName(src, dst string) string {
	return src + "->" + dst
}

func suggest(target string, names []string) []string {
	return match.Suggest(target, names, maxSuggestions)
}

package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/marvin/pkg/action"
	"github.com/aretw0/marvin/pkg/domain"
)

// groupWidth is the length of a body chunk plus its selector symbol.
const groupWidth = domain.BlockSize + 1

// Reducer folds seeds into 16-symbol fingerprints.
// It holds no per-call state and is safe for concurrent use.
type Reducer struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// ReducerOption configures a Reducer.
type ReducerOption func(*Reducer)

// WithLogger sets the structured logger used for per-group debug output.
func WithLogger(logger *slog.Logger) ReducerOption {
	return func(r *Reducer) {
		r.logger = logger
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) ReducerOption {
	return func(r *Reducer) {
		r.hooks = hooks
	}
}

// NewReducer creates a reducer. Without options it logs nowhere and fires no hooks.
func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce folds a seed whose leading ceil(n/17) letters select the action for
// each following 16-letter chunk.
func (r *Reducer) Reduce(ctx context.Context, seed string) (string, error) {
	t, err := r.run(ctx, domain.ModePreamble, StripSpace(seed))
	if err != nil {
		return "", err
	}
	return t.Fingerprint, nil
}

// ReduceImplicit folds a seed with no preamble: every chunk is transformed by action A.
func (r *Reducer) ReduceImplicit(ctx context.Context, seed string) (string, error) {
	t, err := r.run(ctx, domain.ModeImplicit, ImplicitPreamble(StripSpace(seed)))
	if err != nil {
		return "", err
	}
	return t.Fingerprint, nil
}

// Explain performs the same reduction as Reduce or ReduceImplicit and returns every step.
func (r *Reducer) Explain(ctx context.Context, seed string, mode domain.Mode) (*domain.Trace, error) {
	seed = StripSpace(seed)
	if mode == domain.ModeImplicit {
		seed = ImplicitPreamble(seed)
	}
	return r.run(ctx, mode, seed)
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ImplicitPreamble prefixes an already stripped seed with one 'A' per 16-letter chunk.
func ImplicitPreamble(seed string) string {
	groups := (len(seed) + domain.BlockSize - 1) / domain.BlockSize
	return strings.Repeat("A", groups) + seed
}

// PreambleLength is the number of selector symbols at the head of a stripped seed:
// the group count the seed would have if every group were a selector plus a full chunk.
func PreambleLength(seed string) int {
	return (len(seed) + groupWidth - 1) / groupWidth
}

func (r *Reducer) run(ctx context.Context, mode domain.Mode, seed string) (trace *domain.Trace, err error) {
	start := &domain.ReduceEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventReduceStart, Mode: mode},
		SeedLength: len(seed),
	}
	r.fireReduce(ctx, r.hooks.OnReduceStart, start)
	defer func() {
		end := &domain.ReduceEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventReduceEnd, Mode: mode},
			SeedLength: len(seed),
			Err:        err,
		}
		if trace != nil {
			end.Groups = len(trace.Steps)
			end.Fingerprint = trace.Fingerprint
		}
		r.fireReduce(ctx, r.hooks.OnReduceEnd, end)
	}()

	n := PreambleLength(seed)
	selectors, err := parseSelectors(seed[:n])
	if err != nil {
		return nil, err
	}
	body := seed[n:]

	trace = &domain.Trace{Mode: mode, Seed: seed, Preamble: seed[:n], Body: body}
	var acc domain.Block
	for i, sel := range selectors {
		offset := i * domain.BlockSize
		if offset >= len(body) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk := body[offset:min(offset+domain.BlockSize, len(body))]
		in, err := domain.ParseBlock(chunk)
		if err != nil {
			return nil, relocate(err, n+offset)
		}
		act, err := action.Select(sel)
		if err != nil {
			return nil, &domain.SymbolError{Kind: domain.ErrInvalidAction, Char: sel.Rune(), Index: i}
		}
		out := act.Apply(in)

		if i == 0 {
			acc = out
		} else {
			acc = acc.Add(out)
		}
		trace.Steps = append(trace.Steps, domain.Step{Index: i, Selector: sel, Transforms: act.Steps(), Chunk: chunk, Input: in, Output: out})

		r.logger.DebugContext(ctx, "group reduced", "index", i, "action", act, "chunk", chunk, "result", out.String())
		if r.hooks.OnGroup != nil {
			r.hooks.OnGroup(ctx, &domain.GroupEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGroup, Mode: mode},
				Index:     i,
				Selector:  sel,
				Chunk:     chunk,
				Result:    out,
			})
		}
	}

	if len(trace.Steps) == 0 {
		return nil, fmt.Errorf("%w: %d selectors, %d body characters", domain.ErrEmptyReduction, len(selectors), len(body))
	}
	trace.Fingerprint = acc.String()
	return trace, nil
}

func (r *Reducer) fireReduce(ctx context.Context, hook func(context.Context, *domain.ReduceEvent), e *domain.ReduceEvent) {
	if hook != nil {
		hook(ctx, e)
	}
}

func parseSelectors(preamble string) ([]domain.Symbol, error) {
	selectors := make([]domain.Symbol, 0, len(preamble))
	for i := 0; i < len(preamble); i++ {
		s, err := domain.ParseSymbol(rune(preamble[i]))
		if err != nil {
			r, _ := utf8.DecodeRuneInString(preamble[i:])
			return nil, &domain.SymbolError{Kind: err, Char: r, Index: i}
		}
		selectors = append(selectors, s)
	}
	return selectors, nil
}

// relocate shifts the index of a SymbolError from chunk-relative to seed-relative.
func relocate(err error, offset int) error {
	if se, ok := err.(*domain.SymbolError); ok {
		return &domain.SymbolError{Kind: se.Kind, Char: se.Char, Index: se.Index + offset}
	}
	return err
}

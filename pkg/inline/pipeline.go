package inline

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mastermalone/css-unity/pkg/cssnorm"
	"github.com/mastermalone/css-unity/pkg/stylesheet"
)

// Pipeline runs the combine -> normalize -> parse sequence over one
// stylesheet set. Each stage consumes the previous stage's buffer,
// triggering it first when empty, so callers may enter at any stage.
//
// A Pipeline is single-use state for one invocation and must not be shared
// across concurrent callers; construct one per request.
type Pipeline struct {
	set *stylesheet.Set
	log *log.Logger

	combined   string
	normalized string
	stats      Stats
}

// NewPipeline creates a pipeline over set. A nil logger falls back to the
// package default.
func NewPipeline(set *stylesheet.Set, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{set: set, log: logger}
}

// Combine concatenates the stylesheet set into the working buffer.
func (p *Pipeline) Combine(ctx context.Context) (string, error) {
	if p.combined != "" {
		return p.combined, nil
	}

	combined, err := p.set.Combine(ctx)
	if err != nil {
		return "", err
	}

	p.combined = combined
	p.stats.FilesCombined = p.set.Len()
	p.log.Debug("combined stylesheets", "files", p.set.Len(), "bytes", len(combined))
	return p.combined, nil
}

// Normalize canonicalizes the combined text, combining first if needed.
func (p *Pipeline) Normalize(ctx context.Context) (string, error) {
	if p.normalized != "" {
		return p.normalized, nil
	}

	combined, err := p.Combine(ctx)
	if err != nil {
		return "", err
	}

	p.normalized = cssnorm.Normalize(combined, cssnorm.DefaultOptions())
	p.log.Debug("normalized stylesheet", "bytes", len(p.normalized))
	return p.normalized, nil
}

// Parse runs the line transform over the normalized text and returns the
// final artifact: the rewritten CSS, prefixed with the MHTML multipart
// comment when the mode calls for it.
func (p *Pipeline) Parse(ctx context.Context, opts Options) (string, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return "", fmt.Errorf("parse stylesheet: %w", err)
	}
	opts.Mode = mode

	normalized, err := p.Normalize(ctx)
	if err != nil {
		return "", err
	}

	// Counters describe one Parse invocation; only the combine stage
	// carries over between calls.
	p.stats = Stats{FilesCombined: p.stats.FilesCombined}

	if opts.Mode.wantMHTML() && opts.MHTMLBase != "" && !strings.Contains(opts.MHTMLBase, "://") {
		p.log.Debug("mhtml base is not an absolute URL", "base", opts.MHTMLBase)
	}

	resolver := NewResolver(p.set.BaseDir(), p.log)
	eng := newEngine(opts, resolver, &p.stats, p.log)
	result := eng.run(ctx, normalized)

	p.log.Debug("parsed stylesheet",
		"mode", string(opts.Mode),
		"separate", opts.Separate,
		"references", p.stats.ReferencesFound,
		"inlined", p.stats.ResourcesInlined,
		"missing", p.stats.ResourcesMissing,
	)
	return result, nil
}

// Stats returns the statistics gathered so far by this pipeline.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

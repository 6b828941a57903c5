package inline

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// commentPattern matches CSS comments, including multi-line ones.
var commentPattern = regexp.MustCompile(`/\*[^*]*\*+([^/*][^*]*\*+)*/`)

// multiURLPattern finds the joints of comma-separated url(...) lists so
// each reference can be moved onto its own physical line.
var multiURLPattern = regexp.MustCompile(`\),\s*url\(`)

// stripComments removes every CSS comment from text. FILE markers added
// during combination disappear here too.
func stripComments(text string) string {
	return commentPattern.ReplaceAllString(text, "")
}

// splitMultiURL rewrites lines holding several comma-joined url(...)
// references so that each reference occupies its own line. The transform
// engine relies on at most one reference per line.
func splitMultiURL(text string) string {
	return multiURLPattern.ReplaceAllString(text, "),\nurl(")
}

// engine executes the single forward pass over normalized CSS lines.
type engine struct {
	opts     Options
	resolver *Resolver
	block    blockContext
	composer *composer
	stats    *Stats
	log      *log.Logger

	warnedNoBase bool
}

func newEngine(opts Options, resolver *Resolver, stats *Stats, logger *log.Logger) *engine {
	if logger == nil {
		logger = log.Default()
	}
	return &engine{
		opts:     opts,
		resolver: resolver,
		composer: newComposer(),
		stats:    stats,
		log:      logger,
	}
}

// run transforms normalized CSS text and returns the final artifact.
func (e *engine) run(ctx context.Context, normalized string) string {
	text := splitMultiURL(stripComments(normalized))

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch e.block.classify(line) {
		case classBlockOpen:
			e.composer.open(line)
		case classBlockClose:
			e.composer.close()
			e.block.closeBlock()
		case classInBlock:
			e.transform(ctx, line)
		}
	}

	out := e.composer.result(e.opts.Mode.wantMHTML())
	e.stats.BlocksRemoved = e.composer.removed
	return out
}

// transform applies the per-line rewrite policy for in-block lines.
func (e *engine) transform(ctx context.Context, line string) {
	if e.block.inFontFace() {
		// Font resource inlining is tracked but deferred: every line in a
		// font-face block passes through unmodified.
		e.block.noteFontFace(line)
		e.composer.line(line)
		return
	}

	match := matchResource(line)
	if match == nil {
		// Plain line. Under separate partitioning the resource-only
		// outputs drop it; everywhere else it passes through.
		if e.opts.Separate && e.opts.Mode.resourceOnly() {
			return
		}
		e.composer.line(line)
		return
	}

	e.stats.ReferencesFound++

	if isHackLine(line, match) {
		e.stats.HackLinesPreserved++
		e.composer.line(line)
		return
	}

	if e.opts.Mode == ModeNoResources {
		e.log.Debug("stripped resource reference", "path", match.Filepath)
		return
	}

	payload, size, ok := e.resolver.Resolve(ctx, match.Filepath)
	if ok {
		e.stats.ResourcesInlined++
		e.stats.PayloadBytes += int64(size)
	} else {
		e.stats.ResourcesMissing++
	}

	if e.opts.Mode.wantData() {
		rewritten := line
		if ok {
			uri := dataURI("image/"+match.Ext, payload)
			rewritten = strings.Replace(line, match.Filepath, uri, 1)
		}
		e.composer.line(rewritten)
	}

	// The MHTML form is an additional star-prefixed copy of the line; it
	// only exists when the resource actually resolved.
	if e.opts.Mode.wantMHTML() && ok {
		if e.opts.MHTMLBase == "" {
			// An mhtml reference without its base would never resolve.
			if !e.warnedNoBase {
				e.warnedNoBase = true
				e.log.Warn("mhtml base is not set; omitting mhtml references")
			}
			return
		}
		location := contentLocation(match.Filepath)
		uri := mhtmlURI(e.opts.MHTMLBase, location)
		e.composer.line("*" + strings.Replace(line, match.Filepath, uri, 1))
		e.composer.part(location, payload)
	}
}

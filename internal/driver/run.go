package driver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/diag"
	"ferrite/internal/lexer"
	"ferrite/internal/logging"
	"ferrite/internal/lower"
	"ferrite/internal/observ"
	"ferrite/internal/parser"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// fileOutput collects whatever stages of one file completed.
type fileOutput struct {
	Tokens  []token.Token
	EOF     source.Pos
	CST     []*cst.TopLevel
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// runner drives one file through the front end up to a given stage.
// The first lex or parse error is recorded in the bag and stops the file;
// context cancellation is returned as an error.
type runner struct {
	opts   Options
	file   *source.File
	logger *log.Logger
	out    *fileOutput
}

func runFile(ctx context.Context, file *source.File, opts Options, through Stage) (*fileOutput, error) {
	r := &runner{
		opts:   opts,
		file:   file,
		logger: logging.FromContext(ctx).With(logging.FieldPath, file.Path),
		out: &fileOutput{
			Bag:   diag.NewBag(opts.maxDiagnostics()),
			Timer: observ.NewTimer(),
		},
	}

	stages := []struct {
		stage Stage
		fn    func() (string, error)
	}{
		{StageLex, r.lex},
		{StageParse, r.parse},
		{StageLower, r.lower},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return r.out, err
		}
		r.event(st.stage, StatusWorking, nil, 0)
		start := time.Now()
		done := r.out.Timer.Track(string(st.stage))
		note, err := st.fn()
		done(note)
		if err != nil {
			diag.Emit(r.reporter(), err)
			r.logger.Debug("stage failed", logging.FieldPhase, st.stage, "err", err)
			r.event(st.stage, StatusError, err, time.Since(start))
			return r.out, nil
		}
		r.event(st.stage, StatusDone, nil, time.Since(start))
		if st.stage == through {
			break
		}
	}
	return r.out, nil
}

func (r *runner) reporter() diag.Reporter {
	return diag.BagReporter{Bag: r.out.Bag}
}

func (r *runner) event(stage Stage, status Status, err error, elapsed time.Duration) {
	emit(r.opts.Progress, Event{File: r.file.Path, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}

func (r *runner) lex() (string, error) {
	toks, eof, hit, err := r.opts.Cache.Get(r.file)
	if err != nil {
		// битый кэш не мешает лексеру
		r.logger.Debug("token cache read failed", "err", err)
		diag.ReportIO(r.reporter(), diag.SevWarning, diag.IOCacheError, r.file.Path, err)
	}
	if hit {
		r.out.Tokens, r.out.EOF = toks, eof
		r.logger.Debug("token cache hit", logging.FieldTokens, len(toks))
		return "cached", nil
	}

	toks, eof, err = lexer.ReadTokens(r.file.ID, r.file.Content)
	if err != nil {
		return "", err
	}
	r.out.Tokens, r.out.EOF = toks, eof
	if err := r.opts.Cache.Put(r.file, toks, eof); err != nil {
		r.logger.Debug("token cache write failed", "err", err)
		diag.ReportIO(r.reporter(), diag.SevWarning, diag.IOCacheError, r.file.Path, err)
	}
	r.logger.Debug("lexed", logging.FieldTokens, len(toks))
	return "", nil
}

func (r *runner) parse() (string, error) {
	items, err := parser.Parse(r.file.Content, r.out.Tokens, r.out.EOF)
	if err != nil {
		return "", err
	}
	r.out.CST = items
	r.logger.Debug("parsed", logging.FieldItems, len(items))
	return "", nil
}

func (r *runner) lower() (string, error) {
	b := ast.NewBuilder(ast.HintsForTokens(len(r.out.Tokens)))
	r.out.Builder = b
	r.out.FileID = lower.File(b, r.file.Content, r.file.ID, r.out.CST)
	return "", nil
}

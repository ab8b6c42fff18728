package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/diag"
	"ferrite/internal/logging"
	"ferrite/internal/observ"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// ParseDirResult содержит результат обработки одного файла
type ParseDirResult struct {
	Path    string        // путь к файлу
	FileID  source.FileID // ID файла в FileSet; невалиден при ошибке загрузки
	Loaded  bool
	Tokens  []token.Token
	CST     []*cst.TopLevel
	Builder *ast.Builder // nil, если лексер или парсер упали
	ASTFile ast.FileID
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// listSourceFiles возвращает отсортированный список файлов с нужными расширениями
func listSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// ParseDir runs the front end over every matching file under dir in
// parallel. Results follow the sorted path order regardless of scheduling.
// Per-file failures are reported in each result's Bag; the returned error
// covers directory walking and cancellation.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	logger := logging.FromContext(ctx)
	files, err := listSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: всё загружаем заранее, воркеры только читают
	results := make([]ParseDirResult, len(files))
	for i, path := range files {
		results[i] = ParseDirResult{Path: path}
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			bag := diag.NewBag(opts.maxDiagnostics())
			diag.ReportIO(diag.BagReporter{Bag: bag}, diag.SevError, diag.IOLoadFileError, path, loadErr)
			results[i].Bag = bag
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
			continue
		}
		results[i].FileID = fileID
		results[i].Loaded = true
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(files))
	logger.Debug("parsing directory", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range results {
		if !results[i].Loaded {
			continue
		}
		g.Go(func() error {
			file := fileSet.Get(results[i].FileID)
			out, err := runFile(gctx, file, opts, StageLower)
			if err != nil {
				return err
			}
			// индекс i уникален, мьютекс не нужен
			res := &results[i]
			res.Tokens = out.Tokens
			res.CST = out.CST
			res.Builder = out.Builder
			res.ASTFile = out.FileID
			res.Bag = out.Bag
			res.Timer = out.Timer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	emit(opts.Progress, Event{Stage: StageLower, Status: StatusDone, Elapsed: time.Since(started)})
	return fileSet, results, nil
}

// ListSourceFiles returns the files ParseDir would process, in its order.
func ListSourceFiles(dir string, opts Options) ([]string, error) {
	return listSourceFiles(dir, opts.extensions())
}

package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"fn main() {}\n",
	"pub fn add(a: i64, b: i64) -> i64 { a + b }\n",
	"pub(crate::util) struct P { pub x: &mut T, y: *const U, }\n",
	"enum Option { None, Some(T) }\nmod util;\nuse ::std::io::Write;\n",
	"fn f(x: (A, (B,), ())) { let _ = (1,); let y: _ = ((x)); }\n",
	"fn g() { if a == b { c } else if d { e } else { f }; loop { } while x { x = x - 1; } }\n",
	"fn h() { for i in items { i.touch(1, 2); (i.f)(3); } }\n",
	"fn m() { match v { Some(x) => x, (a, _) => a, _ => 0 } }\n",
	"/* a /* nested */ comment */ // line\nfn k() { a.b.c().d }\n",
	"fn big() { 340282366920938463463374607431768211455 }\n",
	"fn bad() { a == b == c }\n",
	"fn u() { let 名前 = 1; }\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.fe файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".fe" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

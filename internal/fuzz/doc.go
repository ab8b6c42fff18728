// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (source -> lexer -> parser -> lowering). Its goal is to smoke test
// robustness and guard against panics on arbitrary inputs, and to check the
// span invariants whenever an input is accepted.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// lowering.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

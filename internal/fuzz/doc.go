// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser and checker). They guard against panics and
// hangs on arbitrary input and check that every failure is a coded error.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и
// парсер с проверкой инвариантов дерева.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/sema, internal/diag, internal/ast, internal/testkit.

package fuzztests

// Package diag defines the semantic error taxonomy and the reporter that
// renders errors against source text.
//
// Every error is fatal: analysis stops at the first *Error, the reporter
// prints it and the process exits with Code as its status.
//
// # Presentation
//
//	4:9: error: undeclared identifier symbol: y
//	    |     x = y + 1;
//	    |         ^
//
// Errors may carry zero or more locations. The first one is the primary
// location and prefixes the message; the rest are printed as
// "appeared here" notes with their own source line and underline.
package diag

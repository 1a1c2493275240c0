// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parsing provides composable parsers that also run in reverse as printers.
//
// A grammar is a tree of immutable combinator values. Parsing walks the tree
// top-down, each node consuming a prefix of a shared input cursor. Printing
// walks the same tree in reverse, each node appending to a shared buffer.
//
// # Architecture
//
//   - Contracts: [Parser], [Printer] and [ParserPrinter] are generic over the
//     input type I and output type O. Only combinators built from printable
//     children implement [Printer].
//   - Backtracking: input is any value type passed as *I. A snapshot is a value
//     copy, restore is an assignment. Every combinator restores the input when
//     it fails and leaves the print buffer untouched when printing fails.
//   - Errors: a single failure signal [ErrFailed], carried by [*Error] with a
//     description and the remaining input length for diagnostics.
//
// # API Topologies
//
//   - Matchers: [Lit], [Elems], [While], [While1], [UpTo], [Through], [ElemsWhile], [Int], [Rest], [End], [Fail].
//   - Modifiers: [NewFilter], [NewNot], [NewOptional], [NewOptionalVoid] and their Printer forms.
//   - Repetition: [NewMany], [NewManyPrinter], [NewReduce] with AtLeast, AtMost and Separator.
//   - Composition: [Map], [Convert], [Take2], [Left], [Right], [OneOf], [Skip].
//   - Effect grammars: [Do], [Take], [TakeBind], [SkipThen], [PeekBind], [Loop] on [code.hybscloud.com/kont].
//
// # Integration
//
//   - Entry points: [Parse], [ParseAll], [ParseEither], [Print] and [PrintTo].
//   - Diagnostics: [Trace] counts attempts with [code.hybscloud.com/atomix] counters.
//   - Records: [NewPipe] hands parsed records to a consumer goroutine over a
//     bounded [code.hybscloud.com/lfq] SPSC queue.
//
// # Example
//
//	number := parsing.Int[string]()
//	list := parsing.NewManyPrinter(number).Separator(parsing.Lit[string](","))
//	xs, rest, _ := parsing.Parse(list, "1,2,3,")
//	// xs == []int{1, 2, 3}, rest == ","
//	out, _ := parsing.Print(list, xs)
//	// out == "1,2,3"
package parsing

// Package textutil bounds free-form text before it is shown in a notification
// banner.
//
// Lengths are counted in runes (Unicode code points), never bytes, so a cut
// never splits a multi-byte character. Two shapes are provided:
//   - Truncate cuts to a hard limit and adds nothing.
//   - Clip cuts to a limit, folds line breaks into spaces and marks the cut
//     with a trailing ellipsis.
package textutil

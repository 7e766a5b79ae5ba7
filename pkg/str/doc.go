// Package str provides Unicode-aware string helpers: case conversion,
// word splitting, truncation, padding and reversal.
//
// Case conversions share one word splitter that understands both separator
// characters and camelCase boundaries, so the conversions compose
// predictably:
//
//	str.SnakeCase("userProfileURL") // "user_profile_url"
//	str.KebabCase("Hello, World!")  // "hello-world"
//	str.CamelCase("some_field-name") // "someFieldName"
//
// Title uses golang.org/x/text casing tables rather than byte-wise ASCII
// logic, so non-English text is cased correctly. All helpers operate on
// runes, never bytes.
package str

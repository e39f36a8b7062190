// Package trace formats error chains and call-site locations for
// terminal display and log persistence.
//
// FormatChain renders an error chain as numbered "=>" continuation
// lines appended to a message. FormatTree renders a deep view with the
// stack frames each error carries (github.com/pkg/errors stacks).
// Location and Stack format the calling site of a log statement.
package trace

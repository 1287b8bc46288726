// Package urlenc implements percent-encoding of strings and byte slices.
//
// Every byte outside a safe set is written as '%' followed by two uppercase
// hexadecimal digits. The default safe set is the RFC 3986 unreserved set:
// ASCII letters, digits, and the four characters '-', '.', '_' and '~'.
//
// # Examples
//
//	"hello!"        -> "hello%21"
//	"a b"           -> "a%20b"
//	"safe-chars_.~" -> "safe-chars_.~"
//	[]byte{0xFF, 0x00, 'A'} -> "%FF%00A"
//
// # Basic Usage
//
// Returning a string:
//
//	s := urlenc.Encode("a b")                 // "a%20b"
//	p := urlenc.EncodeExclude("/a b/c", "/")   // "/a%20b/c"
//	b := urlenc.EncodeBinary([]byte{0xFF})    // "%FF"
//
// Appending to a buffer:
//
//	buf = urlenc.AppendEncode(buf, []byte("a b"))
//
// Writing to a stream:
//
//	enc := urlenc.NewEncoder(w, urlenc.Exclude("/"))
//	enc.EncodeString("/path/with spaces") // writes "/path/with%20spaces"
//
// Formatting lazily:
//
//	fmt.Fprintf(w, "q=%s", urlenc.EncodedString("a&b")) // writes "q=a%26b"
//
// # Allocation
//
// When no byte needs escaping, Encode and EncodeExclude return their input
// string and EncodeBinary returns a string sharing memory with its input.
// Nothing is allocated in that case. Callers of EncodeBinary must not modify
// the slice while the returned string is in use.
//
// # Output
//
// The output is always ASCII. A byte at or above 0x80 is escaped even when a
// caller-supplied Predicate accepts it.
package urlenc

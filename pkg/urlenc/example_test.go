package urlenc_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prodbyola/urlencoding/pkg/urlenc"
)

func ExampleEncode() {
	fmt.Println(urlenc.Encode("hello!"))
	fmt.Println(urlenc.Encode("a b"))
	fmt.Println(urlenc.Encode("safe-chars_.~"))
	// Output:
	// hello%21
	// a%20b
	// safe-chars_.~
}

func ExampleEncodeExclude() {
	fmt.Println(urlenc.EncodeExclude("/path/to/my file", "/"))
	// Output: /path/to/my%20file
}

func ExampleEncodeBinary() {
	fmt.Println(urlenc.EncodeBinary([]byte{0xFF, 0x00, 'A'}))
	// Output: %FF%00A
}

func ExampleAppendEncode() {
	buf := []byte("https://example.com/search?q=")
	buf = urlenc.AppendEncode(buf, []byte("go & rust"))

	fmt.Println(string(buf))
	// Output: https://example.com/search?q=go%20%26%20rust
}

func ExampleEncoded() {
	fmt.Printf("?name=%s&city=%s\n", urlenc.EncodedString("Ann Lee"), urlenc.Encoded("São Paulo"))
	// Output: ?name=Ann%20Lee&city=S%C3%A3o%20Paulo
}

func ExampleEncoded_WriteTo() {
	urlenc.EncodedString("<tag>").WriteTo(os.Stdout)
	fmt.Println()
	// Output: %3Ctag%3E
}

func ExampleNewEncoder() {
	var buf bytes.Buffer
	enc := urlenc.NewEncoder(&buf, urlenc.Exclude("/"))

	enc.EncodeString("/files/")
	enc.EncodeString("report 2024.pdf")

	fmt.Println(buf.String())
	// Output: /files/report%202024.pdf
}

func ExampleWiden() {
	safe := urlenc.Widen(urlenc.Unreserved, ":@")

	fmt.Println(urlenc.EncodeFunc("user@host:22 x", safe))
	// Output: user@host:22%20x
}

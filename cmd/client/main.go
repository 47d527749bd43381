// Command client is a minimal manual RESP client, useful for poking at a
// running server without a full redis-cli. It is not part of the test
// suite; it exists for interactive sanity checks of the wire protocol.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"respkv/resp"
)

func main() {
	addr := flag.String("addr", "localhost:6399", "server address")
	flag.Parse()

	command := flag.Args()
	if len(command) == 0 {
		command = []string{"PING"}
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial:", err)
		os.Exit(1)
	}
	defer conn.Close()

	args := make(resp.Array, len(command))
	for i, c := range command {
		args[i] = resp.BulkString(c)
	}

	if _, err := conn.Write(resp.Encode(args)); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(conn)
	buf := make([]byte, 0, 512)
	tmp := make([]byte, 512)
	for {
		frame, _, err := resp.Decode(buf)
		if err == nil {
			fmt.Println(describe(frame))
			return
		}
		n, rerr := reader.Read(tmp)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, "read:", rerr)
			os.Exit(1)
		}
		buf = append(buf, tmp[:n]...)
	}
}

func describe(f resp.Frame) string {
	switch v := f.(type) {
	case resp.SimpleString:
		return string(v)
	case resp.SimpleError:
		return "(error) " + string(v)
	case resp.Integer:
		return fmt.Sprintf("(integer) %d", v)
	case resp.BulkString:
		return fmt.Sprintf("%q", string(v))
	case resp.NullBulkString, resp.NullArray, resp.Null:
		return "(nil)"
	case resp.Array:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = describe(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", f)
	}
}

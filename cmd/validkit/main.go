// Command validkit validates record files and serves the validation HTTP API.
//
//	validkit check records.yaml
//	validkit check --concurrent - < records.json
//	validkit serve --addr :9090
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

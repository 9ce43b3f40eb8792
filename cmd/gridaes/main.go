// Command gridaes encrypts or decrypts a file with a password-derived key.
//
// The password is mapped onto a 16-byte key by truncation or zero-padding;
// the same password always produces the same key, so a file encrypted on
// one machine decrypts on any other.
//
// # Usage
//
//	go run ./cmd/gridaes --in plain.txt --out secret.bin --password hunter2
//	go run ./cmd/gridaes --decrypt --in secret.bin --out plain.txt --password hunter2
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kruug/gridaes/cipher"
	"github.com/kruug/gridaes/codec"
	"github.com/kruug/gridaes/keys"
)

func main() {
	var (
		inputPath  = flag.String("in", "", "Path of the file to read")
		outputPath = flag.String("out", "", "Path of the file to write")
		password   = flag.String("password", "", "Password the key is derived from")
		decrypt    = flag.Bool("decrypt", false, "Decrypt instead of encrypt")
		workers    = flag.Int("workers", 1, "Number of goroutines processing blocks")
	)
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Error: --in and --out are required")
		os.Exit(1)
	}
	if *password == "" {
		fmt.Println("Error: --password is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", *inputPath, err)
		os.Exit(1)
	}

	key := keys.FromPassword(*password)
	c, err := codec.New(cipher.ExpandKey(key), codec.WithWorkers(*workers))
	if err != nil {
		fmt.Printf("Codec error: %v\n", err)
		os.Exit(1)
	}

	var result []byte
	if *decrypt {
		decoded, err := c.Decode(codec.NewCipherMessage(data))
		if err != nil {
			fmt.Printf("Decrypt error: %v\n", err)
			os.Exit(1)
		}
		result = decoded.Bytes()
	} else {
		encoded, err := c.Encode(codec.NewPlainMessage(data))
		if err != nil {
			fmt.Printf("Encrypt error: %v\n", err)
			os.Exit(1)
		}
		result = encoded.Bytes()
	}

	if err := os.WriteFile(*outputPath, result, 0o600); err != nil {
		fmt.Printf("Error writing %s: %v\n", *outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d bytes to %s\n", len(result), *outputPath)
}

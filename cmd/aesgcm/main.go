// Command aesgcm is a small demonstration wrapper around the aesgcm
// package: it encrypts or decrypts a file with a hex-encoded key and IV.
// It is a convenience for manually exercising the library, not a
// production encryption tool — in particular it never generates its own
// IV unless -gen-iv is passed explicitly.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gomod-aead/aesgcm"
)

func main() {
	var (
		decrypt = flag.Bool("d", false, "decrypt instead of encrypt")
		keyHex  = flag.String("key", "", "hex-encoded key (16, 24, 32, or 64 bytes)")
		ivHex   = flag.String("iv", "", "hex-encoded IV")
		aadHex  = flag.String("aad", "", "hex-encoded additional authenticated data")
		genIV   = flag.Bool("gen-iv", false, "generate a random 12-byte IV and print it to stderr instead of reading -iv")
		in      = flag.String("in", "", "input file path (defaults to stdin)")
		out     = flag.String("out", "", "output file path (defaults to stdout)")
	)
	flag.Parse()

	if err := run(*decrypt, *keyHex, *ivHex, *aadHex, *genIV, *in, *out); err != nil {
		log.Fatal(err)
	}
}

func run(decrypt bool, keyHex, ivHex, aadHex string, genIV bool, inPath, outPath string) error {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("decoding -key: %w", err)
	}

	var iv []byte
	switch {
	case genIV:
		if decrypt {
			return fmt.Errorf("-gen-iv is only valid when encrypting")
		}
		iv = make([]byte, 12)
		if _, err := rand.Read(iv); err != nil {
			return fmt.Errorf("generating IV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "iv: %s\n", hex.EncodeToString(iv))
	default:
		iv, err = hex.DecodeString(ivHex)
		if err != nil {
			return fmt.Errorf("decoding -iv: %w", err)
		}
	}

	aad, err := hex.DecodeString(aadHex)
	if err != nil {
		return fmt.Errorf("decoding -aad: %w", err)
	}

	ctx, err := aesgcm.NewContext(key)
	if err != nil {
		return fmt.Errorf("creating context: %w", err)
	}
	defer ctx.Destroy()

	inFile := os.Stdin
	if inPath != "" {
		inFile, err = os.Open(inPath)
		if err != nil {
			return err
		}
		defer inFile.Close()
	}
	data, err := io.ReadAll(inFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	outFile := os.Stdout
	if outPath != "" {
		outFile, err = os.Create(outPath)
		if err != nil {
			return err
		}
		defer outFile.Close()
	}

	if decrypt {
		if len(data) < aesgcm.TagSize {
			return fmt.Errorf("input too short to contain a tag")
		}
		ciphertext := data[:len(data)-aesgcm.TagSize]
		tag := data[len(data)-aesgcm.TagSize:]
		plaintext, err := ctx.Decrypt(iv, aad, ciphertext, tag)
		if err != nil {
			return err
		}
		_, err = outFile.Write(plaintext)
		return err
	}

	ciphertext, tag, err := ctx.Encrypt(iv, aad, data)
	if err != nil {
		return err
	}
	if _, err := outFile.Write(ciphertext); err != nil {
		return err
	}
	_, err = outFile.Write(tag)
	return err
}

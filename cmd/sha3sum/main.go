// Command sha3sum prints FIPS 202 / SP 800-185 digests of files or standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuvshinzayaArm/sha3"
	"github.com/tuvshinzayaArm/sha3/hazmat/keccak"
)

var (
	algorithm string
	length    int
	customize string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "sha3sum [files...]",
	Short: "Print FIPS 202 / SP 800-185 digests of files or standard input",
	Long: `sha3sum computes a SHA-3 or SHAKE digest of each named file, or of standard input if none are given.

Supported -a values: sha3-224, sha3-256, sha3-384, sha3-512 (the default), shake128, shake256, cshake128, cshake256.
For the SHAKE and cSHAKE families, -l sets the output length in bytes (default 32). -c sets the cSHAKE
customization string for the cshake128/cshake256 families; it is ignored otherwise.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha3-512", "digest algorithm")
	rootCmd.Flags().IntVarP(&length, "length", "l", 32, "output length in bytes (SHAKE/cSHAKE only)")
	rootCmd.Flags().StringVarP(&customize, "customize", "c", "", "cSHAKE customization string")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report whether the host CPU exposes Keccak round acceleration")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		fmt.Fprintf(os.Stderr, "keccak acceleration available: %v\n", keccak.HasAcceleration())
	}

	ctor, err := newHash(algorithm, length, customize)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return sumReader(cmd.OutOrStdout(), ctor, os.Stdin, "-")
	}

	for _, path := range args {
		if err := sumFile(cmd.OutOrStdout(), ctor, path); err != nil {
			return err
		}
	}
	return nil
}

// summer is the minimal surface sumReader needs from either a hash.Hash or a ShakeHash, avoiding a type switch at
// every call site.
type summer interface {
	io.Writer
	Reset()
}

func sumFile(w io.Writer, newHash func() (summer, func([]byte) []byte), path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sumReader(w, newHash, f, path)
}

func sumReader(w io.Writer, newHash func() (summer, func([]byte) []byte), r io.Reader, label string) error {
	h, sum := newHash()
	h.Reset()
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	fmt.Fprintf(w, "%x  %s\n", sum(nil), label)
	return nil
}

// newHash returns a constructor for the requested algorithm: a fresh summer each call, and a function that
// extracts the final digest from it (hash.Hash.Sum for fixed digests, a closure over an XOF Read of length bytes
// for SHAKE/cSHAKE).
func newHash(algorithm string, length int, customize string) (func() (summer, func([]byte) []byte), error) {
	switch algorithm {
	case "sha3-224":
		return func() (summer, func([]byte) []byte) { h := sha3.New224(); return h, h.Sum }, nil
	case "sha3-256":
		return func() (summer, func([]byte) []byte) { h := sha3.New256(); return h, h.Sum }, nil
	case "sha3-384":
		return func() (summer, func([]byte) []byte) { h := sha3.New384(); return h, h.Sum }, nil
	case "sha3-512":
		return func() (summer, func([]byte) []byte) { h := sha3.New512(); return h, h.Sum }, nil
	case "shake128":
		return shakeCtor(func() sha3.ShakeHash { return sha3.NewShake128() }, length), nil
	case "shake256":
		return shakeCtor(func() sha3.ShakeHash { return sha3.NewShake256() }, length), nil
	case "cshake128":
		return shakeCtor(func() sha3.ShakeHash { return sha3.NewCShake128(nil, []byte(customize)) }, length), nil
	case "cshake256":
		return shakeCtor(func() sha3.ShakeHash { return sha3.NewCShake256(nil, []byte(customize)) }, length), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

func shakeCtor(newXOF func() sha3.ShakeHash, length int) func() (summer, func([]byte) []byte) {
	return func() (summer, func([]byte) []byte) {
		sh := newXOF()
		sum := func(b []byte) []byte {
			out := make([]byte, length)
			_, _ = sh.Read(out)
			return append(b, out...)
		}
		return sh, sum
	}
}

package sha3_test

import (
	"fmt"
	"io"

	"github.com/tuvshinzayaArm/sha3"
)

func Example_sum256() {
	h := sha3.New256()
	_, _ = io.WriteString(h, "hello")
	_, _ = io.WriteString(h, " world")

	sum := h.Sum(nil)
	fmt.Printf("%x\n", sum)

	// Output:
	// 644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938
}

func Example_shake128() {
	sh := sha3.NewShake128()
	_, _ = io.WriteString(sh, "hello")
	_, _ = io.WriteString(sh, " world")

	out := make([]byte, 16)
	_, _ = sh.Read(out)
	fmt.Printf("%x\n", out)

	// Output:
	// 3a9159f071e4dd1c8c4f968607c30942
}

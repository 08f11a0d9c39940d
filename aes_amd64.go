//go:build amd64 && gc && !purego

package aesgcm

import "golang.org/x/sys/cpu"

// haveAsm reports whether the AES-NI round function can be used. The
// round function needs AESENC/AESENCLAST; SSE4.1 is checked as well, the
// way aegis's amd64 dispatch does, although the key schedule is always
// expanded by the portable keyExpansionGeneric and never uses either.
var haveAsm = cpu.X86.HasAES && cpu.X86.HasSSE41

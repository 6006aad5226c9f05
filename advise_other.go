//go:build !linux

package cat

import "os"

func adviseSequential(*os.File) {}

package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Basename of the companion file that may be created to store shared utility
// functions, next to the main artifact.
const (
	commonBasenameStem = "common"
	commonBasenameExt  = ".sh"

	// CommonBasename is the default utility-file name.
	CommonBasename = commonBasenameStem + commonBasenameExt
)

// UtilsPath determines where externalized utility functions should be saved.
//
// When the main artifact targets standard output (empty mainDest) there is no
// file to place the utilities next to, so the result is empty and the utility
// text only ever appears as a separate stdout blurb. A /dev/null main artifact
// dooms the utilities to /dev/null as well. Otherwise the default candidate is
// CommonBasename in the main artifact's directory; with overwrite it is used
// unconditionally, else suffixed candidates (common-2.sh, common-3.sh, ...)
// are probed until a free name is found.
func UtilsPath(mainDest string, overwrite bool) string {
	if mainDest == "" {
		return ""
	}
	if mainDest == os.DevNull {
		return os.DevNull
	}

	dir := filepath.Dir(mainDest)
	candidate := filepath.Join(dir, CommonBasename)
	if overwrite || !exists(candidate) {
		return candidate
	}

	for n := 2; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", commonBasenameStem, n, commonBasenameExt))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

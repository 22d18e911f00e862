package firmware

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ImageExt is the extension of the linked image.
	ImageExt = ".elf"
	// BinaryExt is the extension of the flattened binary.
	BinaryExt = ".bin"
	// DefaultBuildDir is where objcopy writes the binary in RT-Thread builds.
	DefaultBuildDir = "build"
)

// Images is a resolved ELF/BIN pair.
type Images struct {
	ELFPath string
	BINPath string
}

// BinaryCandidates returns the two places the flattened binary may live:
// the ELF path with ".elf" replaced by ".bin", then that file's base name
// under buildDir.
func BinaryCandidates(elfPath, buildDir string) (sibling, fallback string) {
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}
	sibling = strings.ReplaceAll(elfPath, ImageExt, BinaryExt)
	fallback = filepath.Join(buildDir, filepath.Base(sibling))
	return sibling, fallback
}

// ResolveImages checks that the ELF exists and finds its binary. Only the
// two BinaryCandidates are tried.
func ResolveImages(elfPath, buildDir string) (Images, error) {
	if !fileExists(elfPath) {
		return Images{}, &MissingFileError{Kind: KindELF, Path: elfPath}
	}

	sibling, fallback := BinaryCandidates(elfPath, buildDir)
	switch {
	case fileExists(sibling):
		return Images{ELFPath: elfPath, BINPath: sibling}, nil
	case fileExists(fallback):
		return Images{ELFPath: elfPath, BINPath: fallback}, nil
	default:
		return Images{}, &MissingFileError{Kind: KindBIN, Path: fallback}
	}
}

// FileSizes returns the on-disk sizes of both images.
func (im Images) FileSizes() (elfSize, binSize int64, err error) {
	elfInfo, err := os.Stat(im.ELFPath)
	if err != nil {
		return 0, 0, &MissingFileError{Kind: KindELF, Path: im.ELFPath, Err: err}
	}
	binInfo, err := os.Stat(im.BINPath)
	if err != nil {
		return 0, 0, &MissingFileError{Kind: KindBIN, Path: im.BINPath, Err: err}
	}
	return elfInfo.Size(), binInfo.Size(), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

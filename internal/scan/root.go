package scan

import (
	"path/filepath"
	"strings"
)

// CommonRoot returns the deepest directory that is an ancestor of every path.
// A single file yields its directory. An empty set yields "". Paths that share
// nothing beyond the filesystem root yield the root itself; paths on different
// volumes yield "".
func CommonRoot(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	common := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		common = commonDir(common, filepath.Dir(p))
		if common == "" {
			break
		}
	}
	return common
}

// commonDir returns the longest shared directory prefix of two cleaned paths,
// compared component-wise so that "/proj/sub" and "/proj/subway" do not
// collapse to "/proj/sub".
func commonDir(a, b string) string {
	sep := string(filepath.Separator)
	as := strings.Split(filepath.Clean(a), sep)
	bs := strings.Split(filepath.Clean(b), sep)

	n := 0
	for n < len(as) && n < len(bs) && as[n] == bs[n] {
		n++
	}
	if n == 0 {
		return ""
	}
	joined := strings.Join(as[:n], sep)
	if joined == "" {
		// Only the leading empty component matched: the filesystem root.
		return sep
	}
	return joined
}

package fstree

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

const mountsFile = "/proc/self/mounts"

// hostVolumes reports "/" followed by every block-device mount point that
// is a directory. Pseudo filesystems (proc, sysfs, tmpfs, overlay, ...) and
// file bind mounts such as /etc/hosts are skipped.
func hostVolumes() ([]Volume, error) {
	return volumesFrom(mountsFile)
}

func volumesFrom(mountsPath string) ([]Volume, error) {
	volumes := []Volume{{Name: "/", Path: "/"}}

	f, err := os.Open(mountsPath)
	if err != nil {
		// No procfs (e.g. a minimal container): the root is still usable.
		return volumes, nil
	}
	defer f.Close()

	mounts, err := parseMounts(bufio.NewScanner(f))
	if err != nil {
		return volumes, err
	}
	seen := map[string]bool{"/": true}
	for _, m := range mounts {
		if seen[m] {
			continue
		}
		seen[m] = true
		if info, err := os.Stat(m); err != nil || !info.IsDir() {
			continue
		}
		volumes = append(volumes, Volume{Name: m, Path: m})
	}
	return volumes, nil
}

// parseMounts returns mount points backed by /dev devices, in file order.
func parseMounts(sc *bufio.Scanner) ([]string, error) {
	var out []string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		out = append(out, unescapeMount(fields[1]))
	}
	return out, sc.Err()
}

// unescapeMount decodes the octal escapes (\040 for space, ...) used in
// /proc/self/mounts.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

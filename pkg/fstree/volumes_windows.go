//go:build windows

package fstree

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// hostVolumes enumerates drive letters from the logical drive bitmask.
func hostVolumes() ([]Volume, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}
	var volumes []Volume
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		drive := fmt.Sprintf("%c:\\", 'A'+i)
		volumes = append(volumes, Volume{Name: volumeLabel(drive), Path: drive})
	}
	return volumes, nil
}

// volumeLabel returns "C:\ (System)" when the drive has a label, else the drive.
func volumeLabel(drive string) string {
	root, err := windows.UTF16PtrFromString(drive)
	if err != nil {
		return drive
	}
	name := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumeInformation(root, &name[0], uint32(len(name)), nil, nil, nil, nil, 0); err != nil {
		// Empty card readers and disconnected network drives land here.
		return drive
	}
	if label := windows.UTF16ToString(name); label != "" {
		return fmt.Sprintf("%s (%s)", drive, label)
	}
	return drive
}

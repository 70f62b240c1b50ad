package rawterm

import "golang.org/x/sys/unix"

type termState = unix.Termios

func makeNonCanonical(fd int) (*termState, error) {
	old, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}
	saved := *old
	old.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, old); err != nil {
		return nil, err
	}
	return &saved, nil
}

func restore(fd int, saved *termState) {
	unix.IoctlSetTermios(fd, unix.TCSETS, saved)
}

// Copyright 2025 Nathan Charles Jones
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keyboard puts the controlling terminal into cbreak mode and delivers
// single key presses on a channel. Close restores the saved attributes.
type keyboard struct {
	fd    uintptr
	saved unix.Termios
	ch    chan byte
}

func openKeyboard() (*keyboard, error) {
	k := &keyboard{
		fd: os.Stdin.Fd(),
		ch: make(chan byte, 8),
	}
	if err := termios.Tcgetattr(k.fd, &k.saved); err != nil {
		return nil, errors.Wrap(err, "keyboard")
	}
	cbreak := k.saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(k.fd, termios.TCIFLUSH, &cbreak); err != nil {
		return nil, errors.Wrap(err, "keyboard")
	}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(k.ch)
				return
			}
			if n > 0 {
				k.ch <- buf[0]
			}
		}
	}()
	return k, nil
}

// Close restores the terminal attributes saved by openKeyboard and
// closes stdin so the reader goroutine unblocks and exits.
func (k *keyboard) Close() {
	_ = termios.Tcsetattr(k.fd, termios.TCIFLUSH, &k.saved)
	_ = os.Stdin.Close()
}

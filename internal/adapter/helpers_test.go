package adapter

import "fmt"

func fmtWrap(err error) error {
	return fmt.Errorf("send: %w", err)
}

package dump

import (
	"fmt"
	"io"

	"github.com/xiaomi388/empmanag/pkg/employee"
	"github.com/xiaomi388/empmanag/pkg/render"
)

// Dump writes every stored record to w in the given format.
func Dump(w io.Writer, format string) error {
	s, err := employee.Open()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := render.Encode(w, s.List(), format); err != nil {
		return fmt.Errorf("failed to dump records: %w", err)
	}

	return nil
}

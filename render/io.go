package render

import (
	"io"

	"github.com/shopfab/shelfgen"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return io.EOF.
func RenderAll(r Renderer) ([]shelfgen.Triangle, error) {
	var err error
	var nt int
	result := make([]shelfgen.Triangle, 0, 1<<10)
	buf := make([]shelfgen.Triangle, 256)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

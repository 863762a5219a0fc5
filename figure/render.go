package figure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Renderer displays a figure. Render blocks until the figure has been
// acknowledged: closed by the user, or flushed to its destination.
type Renderer interface {
	Render(fig *Figure) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(fig *Figure) error

// Render calls f(fig).
func (f RendererFunc) Render(fig *Figure) error {
	return f(fig)
}

// PNGRenderer writes every figure to a numbered PNG file in Dir.
type PNGRenderer struct {
	Dir    string
	logger *zap.Logger
	files  []string
}

// NewPNGRenderer creates the output directory if needed.
func NewPNGRenderer(dir string, logger *zap.Logger) (*PNGRenderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create figure directory %q: %w", dir, err)
	}
	return &PNGRenderer{Dir: dir, logger: logger}, nil
}

// Render encodes the figure and returns once the file is closed.
func (r *PNGRenderer) Render(fig *Figure) error {
	name := fig.Name
	if name == "" {
		name = "figure"
	}
	path := filepath.Join(r.Dir, fmt.Sprintf("%02d_%s.png", len(r.files)+1, name))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := Encode(fig, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}

	r.files = append(r.files, path)
	r.logger.Info("figure written",
		zap.String("title", fig.Title),
		zap.String("path", path),
	)
	return nil
}

// Files returns the paths written so far, in order.
func (r *PNGRenderer) Files() []string {
	return r.files
}

// fileLister is implemented by renderers that write figures to disk.
type fileLister interface {
	Files() []string
}

// PromptRenderer renders through Next, then waits for a line on its input
// before returning. End of input counts as an acknowledgment. When Next
// writes files, the prompt names the file just written.
type PromptRenderer struct {
	Next Renderer
	in   *bufio.Reader
	out  io.Writer
}

// NewPromptRenderer creates a renderer that prompts on out and reads from in.
func NewPromptRenderer(next Renderer, in io.Reader, out io.Writer) *PromptRenderer {
	if out == nil {
		out = io.Discard
	}
	return &PromptRenderer{Next: next, in: bufio.NewReader(in), out: out}
}

// Render passes fig to Next and blocks until a line is read.
func (r *PromptRenderer) Render(fig *Figure) error {
	if r.Next != nil {
		if err := r.Next.Render(fig); err != nil {
			return err
		}
	}
	if path := r.lastFile(); path != "" {
		fmt.Fprintf(r.out, "[%s] saved to %s, press Enter to continue...", fig.Title, path)
	} else {
		fmt.Fprintf(r.out, "[%s] press Enter to continue...", fig.Title)
	}
	_, err := r.in.ReadString('\n')
	fmt.Fprintln(r.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for acknowledgment: %w", err)
	}
	return nil
}

func (r *PromptRenderer) lastFile() string {
	fl, ok := r.Next.(fileLister)
	if !ok {
		return ""
	}
	files := fl.Files()
	if len(files) == 0 {
		return ""
	}
	return files[len(files)-1]
}

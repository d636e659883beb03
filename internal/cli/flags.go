package cli

import (
	"github.com/spf13/cobra"

	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/units"
)

// designFlags collects the flags that describe a frame design inline.
// Dimension flags are strings so users can write measurements in any
// accepted form: "4.75", "4 3/4", "120mm".
type designFlags struct {
	height     string
	width      string
	mat        string
	matSides   string
	overlap    string
	frameWidth string
	frameDepth string
	noMat      bool
	noMargin   bool
}

// addDesignFlags registers the shared design flags on a command.
func addDesignFlags(cmd *cobra.Command, f *designFlags) {
	cmd.Flags().StringVar(&f.height, "height", "", `Artwork height, e.g. "8", "8 1/2", "210mm"`)
	cmd.Flags().StringVar(&f.width, "width", "", "Artwork width")
	cmd.Flags().StringVar(&f.mat, "mat", "", "Mat width on top and bottom (and sides, unless --mat-sides is set)")
	cmd.Flags().StringVar(&f.matSides, "mat-sides", "", "Mat width on left and right")
	cmd.Flags().StringVar(&f.overlap, "overlap", "", "Mat overlap onto each artwork edge")
	cmd.Flags().StringVar(&f.frameWidth, "frame-width", "", "Frame material face width")
	cmd.Flags().StringVar(&f.frameDepth, "frame-depth", "", "Frame material depth")
	cmd.Flags().BoolVar(&f.noMat, "no-mat", false, "Mount without a mat")
	cmd.Flags().BoolVar(&f.noMargin, "no-margin", false, "Size the mat opening exactly to the artwork")
}

// changed reports whether any design flag was provided.
func (f *designFlags) changed() bool {
	return f.height != "" || f.width != "" || f.mat != "" || f.matSides != "" ||
		f.overlap != "" || f.frameWidth != "" || f.frameDepth != "" ||
		f.noMat || f.noMargin
}

// design builds a frame design from the flags, starting from the stock
// defaults. Measurements without a unit suffix are read in def.
func (f *designFlags) design(def units.Unit) (frame.Design, error) {
	d := frame.Default()

	set := func(raw string, dst *float64) error {
		if raw == "" {
			return nil
		}
		v, err := units.ParseMeasurement(raw, def)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	if err := set(f.height, &d.ArtworkHeight); err != nil {
		return frame.Design{}, err
	}
	if err := set(f.width, &d.ArtworkWidth); err != nil {
		return frame.Design{}, err
	}
	if err := set(f.mat, &d.MatWidthTopBottom); err != nil {
		return frame.Design{}, err
	}
	if f.matSides != "" {
		d.SymmetricalMat = false
		if err := set(f.matSides, &d.MatWidthSides); err != nil {
			return frame.Design{}, err
		}
	}
	if err := set(f.overlap, &d.MatOverlap); err != nil {
		return frame.Design{}, err
	}
	if err := set(f.frameWidth, &d.FrameMaterialWidth); err != nil {
		return frame.Design{}, err
	}
	if err := set(f.frameDepth, &d.FrameMaterialDepth); err != nil {
		return frame.Design{}, err
	}
	if f.noMat {
		d.MatWidthTopBottom = 0
		d.MatWidthSides = 0
	}
	if f.noMargin {
		d.NoArtworkMargin = true
	}

	return frame.New(d)
}

package diaphragm

// TableHeader lists the result table columns in the template's order. The
// first column is the wall name; Values returns the rest.
var TableHeader = []string{
	"Wall Name", "Length (m)", "Height (m)", "w_k (kN)",
	"x_coord (m)", "y_coord (m)", "xk (m)", "yk (m)",
	"Di", "Rix", "Riy",
	"xbar", "ybar",
	"Real Tor Ratio_x", "Real Tor Ratio_y", "Vx_Real Tor", "Vy_Real Tor",
	"Direct Shear Ratio_x", "Direct Shear Ratio_y", "Direct Shear_x", "Direct Shear_y",
	"AccTorRatio_x", "AccTorRatio_y", "Vx_Acc_Tor", "Vy_Acc_Tor",
	"Vx (kN)", "Vy (kN)",
}

// Values returns the numeric cells of one result row, in TableHeader order
// after the name column.
func (w WallResult) Values() []float64 {
	return []float64{
		w.Length, w.Height, w.Weight,
		w.X, w.Y, w.Xk, w.Yk,
		w.Di, w.Rix, w.Riy,
		w.Xbar, w.Ybar,
		w.RealTorRatioX, w.RealTorRatioY, w.VxRealTor, w.VyRealTor,
		w.DirectRatioX, w.DirectRatioY, w.VxDirect, w.VyDirect,
		w.AccTorRatioX, w.AccTorRatioY, w.VxAccTor, w.VyAccTor,
		w.VxTotal, w.VyTotal,
	}
}

// SummaryRows returns the key-result name/value pairs in display order.
func (s Summary) SummaryRows() []struct {
	Name  string
	Value float64
} {
	return []struct {
		Name  string
		Value float64
	}{
		{"Xcm (working)", s.MassCenterX},
		{"Ycm (working)", s.MassCenterY},
		{"Xcr (CoR)", s.Xcr},
		{"Ycr (CoR)", s.Ycr},
		{"ex (real)", s.Ex},
		{"ey (real)", s.Ey},
		{"exbar (0.1L)", s.ExAcc},
		{"eybar (0.1B)", s.EyAcc},
		{"Jp", s.Jp},
		{"sum Rix", s.SumRix},
		{"sum Riy", s.SumRiy},
		{"Fx", s.ForceX},
		{"Fy", s.ForceY},
	}
}

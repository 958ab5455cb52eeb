package particle

// Draw plots every particle as a single pixel.
func (ps *System) Draw(dst PixelDrawer) {
	for _, p := range ps.Particles {
		dst.DrawPixel(int(p.Position.X), int(p.Position.Y), p.Color)
	}
}

package deck

// emuPerPixel is the number of EMUs (English Metric Units) per pixel at
// 96 DPI. 1 inch = 914400 EMU and 96 pixels, so 914400 / 96 = 9525.
const emuPerPixel = 9525

// emuToPixels converts EMU to pixels at 96 DPI. OOXML uses EMU for
// internal coordinate representation.
func emuToPixels(emu int64) int {
	return int(emu / emuPerPixel)
}

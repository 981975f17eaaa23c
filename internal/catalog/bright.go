package catalog

// BrightStars returns a built-in catalog of bright stars (J2000 epoch,
// Yale Bright Star Catalog positions), usable without a catalog file.
// IDs are assigned in catalog order.
func BrightStars() Catalog {
	return New(brightStars)
}

// brightStars lists well-known bright stars, brightest first.
var brightStars = []Star{
	{1, 101.287, -16.716},  // Sirius
	{2, 95.988, -52.696},   // Canopus
	{3, 213.915, 19.182},   // Arcturus
	{4, 279.235, 38.784},   // Vega
	{5, 79.172, 45.998},    // Capella
	{6, 78.634, -8.202},    // Rigel
	{7, 114.826, 5.225},    // Procyon
	{8, 24.429, -57.237},   // Achernar
	{9, 88.793, 7.407},     // Betelgeuse
	{10, 210.956, -60.373}, // Hadar
	{11, 297.696, 8.868},   // Altair
	{12, 186.650, -63.099}, // Acrux
	{13, 68.980, 16.509},   // Aldebaran
	{14, 247.352, -26.432}, // Antares
	{15, 201.298, -11.161}, // Spica
	{16, 116.329, 28.026},  // Pollux
	{17, 344.413, -29.622}, // Fomalhaut
	{18, 310.358, 45.280},  // Deneb
	{19, 191.930, -59.689}, // Mimosa
	{20, 152.093, 11.967},  // Regulus
	{21, 104.656, -28.972}, // Adhara
	{22, 113.650, 31.889},  // Castor
	{23, 187.791, -57.113}, // Gacrux
	{24, 263.402, -37.104}, // Shaula
	{25, 81.283, 6.350},    // Bellatrix
	{26, 81.573, 28.608},   // Elnath
	{27, 138.300, -69.717}, // Miaplacidus
	{28, 84.053, -1.202},   // Alnilam
	{29, 332.058, -46.961}, // Alnair
	{30, 85.190, -1.943},   // Alnitak
	{31, 193.507, 55.960},  // Alioth
	{32, 165.932, 61.751},  // Dubhe
	{33, 51.081, 49.861},   // Mirfak
	{34, 107.098, -26.393}, // Wezen
	{35, 264.330, -42.998}, // Sargas
	{36, 276.043, -34.384}, // Kaus Australis
	{37, 125.629, -59.509}, // Avior
	{38, 206.885, 49.313},  // Alkaid
	{39, 89.882, 44.948},   // Menkalinan
	{40, 252.166, -69.028}, // Atria
	{41, 99.428, 16.399},   // Alhena
	{42, 306.412, -56.735}, // Peacock
	{43, 131.176, -54.709}, // Alsephina
	{44, 95.675, -17.956},  // Mirzam
	{45, 37.954, 89.264},   // Polaris
	{46, 141.897, -8.659},  // Alphard
	{47, 31.793, 23.463},   // Hamal
	{48, 283.816, -26.297}, // Nunki
	{49, 2.097, 29.091},    // Alpheratz
	{50, 222.676, 74.156},  // Kochab
}

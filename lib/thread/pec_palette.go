// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package thread

// pecPalette is the fixed Brother thread table used by the PEC family
// of formats. Entry 0 is a reserved "Unknown" placeholder: PEC color
// indices are machine-assigned starting at 1, and index 0 shows up only
// in malformed files. The table contents are format constants.
var pecPalette = [...]Thread{
	{Color: Color{0, 0, 0}, Description: "Unknown", CatalogNumber: "0"},
	pecThread(14, 31, 124, "Prussian Blue", "1"),
	pecThread(10, 85, 163, "Blue", "2"),
	pecThread(0, 135, 119, "Teal Green", "3"),
	pecThread(75, 107, 175, "Cornflower Blue", "4"),
	pecThread(237, 23, 31, "Red", "5"),
	pecThread(209, 92, 0, "Reddish Brown", "6"),
	pecThread(145, 54, 151, "Magenta", "7"),
	pecThread(228, 154, 203, "Light Lilac", "8"),
	pecThread(145, 95, 172, "Lilac", "9"),
	pecThread(158, 214, 125, "Mint Green", "10"),
	pecThread(232, 169, 0, "Deep Gold", "11"),
	pecThread(254, 186, 53, "Orange", "12"),
	pecThread(255, 255, 0, "Yellow", "13"),
	pecThread(112, 188, 31, "Lime Green", "14"),
	pecThread(186, 152, 0, "Brass", "15"),
	pecThread(168, 168, 168, "Silver", "16"),
	pecThread(125, 111, 0, "Russet Brown", "17"),
	pecThread(255, 255, 179, "Cream Brown", "18"),
	pecThread(79, 85, 86, "Pewter", "19"),
	pecThread(0, 0, 0, "Black", "20"),
	pecThread(11, 61, 145, "Ultramarine", "21"),
	pecThread(119, 1, 118, "Royal Purple", "22"),
	pecThread(41, 49, 51, "Dark Gray", "23"),
	pecThread(42, 19, 1, "Dark Brown", "24"),
	pecThread(246, 74, 138, "Deep Rose", "25"),
	pecThread(178, 118, 36, "Light Brown", "26"),
	pecThread(252, 187, 197, "Salmon Pink", "27"),
	pecThread(254, 55, 15, "Vermilion", "28"),
	pecThread(240, 240, 240, "White", "29"),
	pecThread(106, 28, 138, "Violet", "30"),
	pecThread(168, 221, 196, "Seacrest", "31"),
	pecThread(37, 132, 187, "Sky Blue", "32"),
	pecThread(254, 179, 67, "Pumpkin", "33"),
	pecThread(255, 243, 107, "Cream Yellow", "34"),
	pecThread(208, 166, 96, "Khaki", "35"),
	pecThread(209, 84, 0, "Clay Brown", "36"),
	pecThread(102, 186, 73, "Leaf Green", "37"),
	pecThread(19, 74, 70, "Peacock Blue", "38"),
	pecThread(135, 135, 135, "Gray", "39"),
	pecThread(216, 204, 198, "Warm Gray", "40"),
	pecThread(67, 86, 7, "Dark Olive", "41"),
	pecThread(253, 217, 222, "Flesh Pink", "42"),
	pecThread(249, 147, 188, "Pink", "43"),
	pecThread(0, 56, 34, "Deep Green", "44"),
	pecThread(178, 175, 212, "Lavender", "45"),
	pecThread(104, 106, 176, "Wisteria Violet", "46"),
	pecThread(239, 227, 185, "Beige", "47"),
	pecThread(247, 56, 102, "Carmine", "48"),
	pecThread(181, 75, 100, "Amber Red", "49"),
	pecThread(19, 43, 26, "Olive Green", "50"),
	pecThread(199, 1, 86, "Dark Fuchsia", "51"),
	pecThread(254, 158, 50, "Tangerine", "52"),
	pecThread(168, 222, 235, "Light Blue", "53"),
	pecThread(0, 103, 62, "Emerald Green", "54"),
	pecThread(78, 41, 144, "Purple", "55"),
	pecThread(47, 126, 32, "Moss Green", "56"),
	pecThread(255, 204, 204, "Flesh Pink", "57"),
	pecThread(255, 217, 17, "Harvest Gold", "58"),
	pecThread(9, 91, 166, "Electric Blue", "59"),
	pecThread(240, 249, 112, "Lemon Yellow", "60"),
	pecThread(227, 243, 91, "Fresh Green", "61"),
	pecThread(255, 153, 0, "Orange", "62"),
	pecThread(255, 240, 141, "Cream Yellow", "63"),
	pecThread(255, 200, 200, "Applique", "64"),
}

func pecThread(r, g, b uint8, description, catalogNumber string) Thread {
	return Thread{
		Color:         Color{r, g, b},
		Description:   description,
		CatalogNumber: catalogNumber,
		Brand:         "Brother",
		Chart:         "Brother",
	}
}

// PECThreads returns the default PEC thread palette as a fresh slice.
// Callers may claim or reorder entries without affecting other callers.
func PECThreads() []Thread {
	palette := make([]Thread, len(pecPalette))
	copy(palette, pecPalette[:])
	return palette
}

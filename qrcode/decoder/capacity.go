package decoder

// characterCapacity holds the number of characters each version can carry,
// indexed by version-1 and then by level ordinal (L, M, Q, H).
var characterCapacity = map[Mode]*[40][4]int{
	ModeNumeric: &[40][4]int{
		{41, 34, 27, 17}, // 1
		{77, 63, 48, 34}, // 2
		{127, 101, 77, 58}, // 3
		{187, 149, 111, 82}, // 4
		{255, 202, 144, 106}, // 5
		{322, 255, 178, 139}, // 6
		{370, 293, 207, 154}, // 7
		{461, 365, 259, 202}, // 8
		{552, 432, 312, 235}, // 9
		{652, 513, 364, 288}, // 10
		{772, 604, 427, 331}, // 11
		{883, 691, 489, 374}, // 12
		{1022, 796, 580, 427}, // 13
		{1101, 871, 621, 468}, // 14
		{1250, 991, 703, 530}, // 15
		{1408, 1082, 775, 602}, // 16
		{1548, 1212, 876, 674}, // 17
		{1725, 1346, 948, 746}, // 18
		{1903, 1500, 1063, 813}, // 19
		{2061, 1600, 1159, 919}, // 20
		{2232, 1708, 1224, 969}, // 21
		{2409, 1872, 1358, 1056}, // 22
		{2620, 2059, 1468, 1108}, // 23
		{2812, 2188, 1588, 1228}, // 24
		{3057, 2395, 1718, 1286}, // 25
		{3283, 2544, 1804, 1425}, // 26
		{3517, 2701, 1933, 1501}, // 27
		{3669, 2857, 2085, 1581}, // 28
		{3909, 3035, 2181, 1677}, // 29
		{4158, 3289, 2358, 1782}, // 30
		{4417, 3486, 2473, 1897}, // 31
		{4686, 3693, 2670, 2022}, // 32
		{4965, 3909, 2805, 2157}, // 33
		{5253, 4134, 2949, 2301}, // 34
		{5529, 4343, 3081, 2361}, // 35
		{5836, 4588, 3244, 2524}, // 36
		{6153, 4775, 3417, 2625}, // 37
		{6479, 5039, 3599, 2735}, // 38
		{6743, 5313, 3791, 2927}, // 39
		{7089, 5596, 3993, 3057}, // 40
	},
	ModeAlphanumeric: &[40][4]int{
		{25, 20, 16, 10}, // 1
		{47, 38, 29, 20}, // 2
		{77, 61, 47, 35}, // 3
		{114, 90, 67, 50}, // 4
		{154, 122, 87, 64}, // 5
		{195, 154, 108, 84}, // 6
		{224, 178, 125, 93}, // 7
		{279, 221, 157, 122}, // 8
		{335, 262, 189, 143}, // 9
		{395, 311, 221, 174}, // 10
		{468, 366, 259, 200}, // 11
		{535, 419, 296, 227}, // 12
		{619, 483, 352, 259}, // 13
		{667, 528, 376, 283}, // 14
		{758, 600, 426, 321}, // 15
		{854, 656, 470, 365}, // 16
		{938, 734, 531, 408}, // 17
		{1046, 816, 574, 452}, // 18
		{1153, 909, 644, 493}, // 19
		{1249, 970, 702, 557}, // 20
		{1352, 1035, 742, 587}, // 21
		{1460, 1134, 823, 640}, // 22
		{1588, 1248, 890, 672}, // 23
		{1704, 1326, 963, 744}, // 24
		{1853, 1451, 1041, 779}, // 25
		{1990, 1542, 1094, 864}, // 26
		{2132, 1637, 1172, 910}, // 27
		{2223, 1732, 1263, 958}, // 28
		{2369, 1839, 1322, 1016}, // 29
		{2520, 1994, 1429, 1080}, // 30
		{2677, 2113, 1499, 1150}, // 31
		{2840, 2238, 1618, 1226}, // 32
		{3009, 2369, 1700, 1307}, // 33
		{3183, 2506, 1787, 1394}, // 34
		{3351, 2632, 1867, 1431}, // 35
		{3537, 2780, 1966, 1530}, // 36
		{3729, 2894, 2071, 1591}, // 37
		{3927, 3054, 2181, 1658}, // 38
		{4087, 3220, 2298, 1774}, // 39
		{4296, 3391, 2420, 1852}, // 40
	},
	ModeByte: &[40][4]int{
		{17, 14, 11, 7}, // 1
		{32, 26, 20, 14}, // 2
		{53, 42, 32, 24}, // 3
		{78, 62, 46, 34}, // 4
		{106, 84, 60, 44}, // 5
		{134, 106, 74, 58}, // 6
		{154, 122, 86, 64}, // 7
		{192, 152, 108, 84}, // 8
		{230, 180, 130, 98}, // 9
		{271, 213, 151, 119}, // 10
		{321, 251, 177, 137}, // 11
		{367, 287, 203, 155}, // 12
		{425, 331, 241, 177}, // 13
		{458, 362, 258, 194}, // 14
		{520, 412, 292, 220}, // 15
		{586, 450, 322, 250}, // 16
		{644, 504, 364, 280}, // 17
		{718, 560, 394, 310}, // 18
		{792, 624, 442, 338}, // 19
		{858, 666, 482, 382}, // 20
		{929, 711, 509, 403}, // 21
		{1003, 779, 565, 439}, // 22
		{1091, 857, 611, 461}, // 23
		{1171, 911, 661, 511}, // 24
		{1273, 997, 715, 535}, // 25
		{1367, 1059, 751, 593}, // 26
		{1465, 1125, 805, 625}, // 27
		{1528, 1190, 868, 658}, // 28
		{1628, 1264, 908, 698}, // 29
		{1732, 1370, 982, 742}, // 30
		{1840, 1452, 1030, 790}, // 31
		{1952, 1538, 1112, 842}, // 32
		{2068, 1628, 1168, 898}, // 33
		{2188, 1722, 1228, 958}, // 34
		{2303, 1809, 1283, 983}, // 35
		{2431, 1911, 1351, 1051}, // 36
		{2563, 1989, 1423, 1093}, // 37
		{2699, 2099, 1499, 1139}, // 38
		{2809, 2213, 1579, 1219}, // 39
		{2953, 2331, 1663, 1273}, // 40
	},
	ModeKanji: &[40][4]int{
		{10, 8, 7, 4}, // 1
		{20, 16, 12, 8}, // 2
		{32, 26, 20, 15}, // 3
		{48, 38, 28, 21}, // 4
		{65, 52, 37, 27}, // 5
		{82, 65, 45, 36}, // 6
		{95, 75, 53, 39}, // 7
		{118, 93, 66, 52}, // 8
		{141, 111, 80, 60}, // 9
		{167, 131, 93, 74}, // 10
		{198, 155, 109, 85}, // 11
		{226, 177, 125, 96}, // 12
		{262, 204, 149, 109}, // 13
		{282, 223, 159, 120}, // 14
		{320, 254, 180, 136}, // 15
		{361, 277, 198, 154}, // 16
		{397, 310, 224, 173}, // 17
		{442, 345, 243, 191}, // 18
		{488, 384, 272, 208}, // 19
		{528, 410, 297, 235}, // 20
		{572, 438, 314, 248}, // 21
		{618, 480, 348, 270}, // 22
		{672, 528, 376, 284}, // 23
		{721, 561, 407, 315}, // 24
		{784, 614, 440, 330}, // 25
		{842, 652, 462, 365}, // 26
		{902, 692, 496, 385}, // 27
		{940, 732, 534, 405}, // 28
		{1002, 778, 559, 430}, // 29
		{1066, 843, 604, 457}, // 30
		{1132, 894, 634, 486}, // 31
		{1201, 947, 684, 518}, // 32
		{1273, 1002, 719, 553}, // 33
		{1347, 1060, 756, 590}, // 34
		{1417, 1113, 790, 605}, // 35
		{1496, 1176, 832, 647}, // 36
		{1577, 1224, 876, 673}, // 37
		{1661, 1292, 923, 701}, // 38
		{1729, 1362, 972, 750}, // 39
		{1817, 1435, 1024, 784}, // 40
	},
}

// CharacterCapacity returns how many characters of the given mode fit in
// version at ecLevel, or 0 if the mode has no capacity table.
func CharacterCapacity(mode Mode, version int, ecLevel ErrorCorrectionLevel) int {
	table, ok := characterCapacity[mode]
	if !ok || version < 1 || version > 40 {
		return 0
	}
	return table[version-1][ecLevel.Ordinal()]
}

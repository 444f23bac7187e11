package data

// rankedArmors lists armors from weakest to strongest; the index is the rank.
var rankedArmors = []Kind{
	KindClothArmor,
	KindLeatherArmor,
	KindMailArmor,
	KindPlateArmor,
	KindRedArmor,
	KindGoldenArmor,
}

// rankedWeapons lists weapons from weakest to strongest; the index is the rank.
var rankedWeapons = []Kind{
	KindSword1,
	KindSword2,
	KindAxe,
	KindMorningStar,
	KindBlueSword,
	KindRedSword,
	KindGoldenSword,
}

// ArmorRank returns the rank of an armor kind. Kinds outside the ranked
// list (including FIREFOX) rank 0.
func ArmorRank(k Kind) int32 {
	return rankOf(rankedArmors, k)
}

// WeaponRank returns the rank of a weapon kind. Unknown kinds rank 0.
func WeaponRank(k Kind) int32 {
	return rankOf(rankedWeapons, k)
}

func rankOf(ranked []Kind, k Kind) int32 {
	for i, r := range ranked {
		if r == k {
			return int32(i)
		}
	}
	return 0
}

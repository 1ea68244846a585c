package game

// Таблица выплат по комбинациям
const (
	// Символ джекпота
	jackpotSymbol = 7

	jackpotPayout      = 7500
	fiveOfAKindPayout  = 1250
	fourOfAKindPayout  = 500
	fullHousePayout    = 250
	threeOfAKindPayout = 150
	twoPairPayout      = 60
)

// isJackpot - все пять барабанов показывают семерку
func isJackpot(reels [reelCount]int) bool {
	for _, sym := range reels {
		if sym != jackpotSymbol {
			return false
		}
	}
	return true
}

// evaluatePayout - чистая функция оценки итогового вектора символов.
// Правила проверяются строго по порядку, применяется первое совпавшее:
// джекпот, две пары, фулл-хаус, затем по максимальному числу
// одинаковых символов. Пять семерок обязаны попасть в джекпот,
// а не в пятерку одинаковых
func evaluatePayout(reels [reelCount]int) int {
	if isJackpot(reels) {
		return jackpotPayout
	}

	// Группируем символы по значению
	counts := make(map[int]int, reelCount)
	for _, sym := range reels {
		counts[sym]++
	}

	var pairs, triples, maxCount int
	for _, c := range counts {
		switch c {
		case 2:
			pairs++
		case 3:
			triples++
		}
		if c > maxCount {
			maxCount = c
		}
	}

	// Ровно две пары и один непарный символ
	if pairs == 2 {
		return twoPairPayout
	}

	// Фулл-хаус: одна тройка и одна пара
	if triples == 1 && pairs == 1 {
		return fullHousePayout
	}

	switch maxCount {
	case 5:
		return fiveOfAKindPayout
	case 4:
		return fourOfAKindPayout
	case 3:
		return threeOfAKindPayout
	default:
		return 0
	}
}

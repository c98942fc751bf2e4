package systems

// comboTable - фиксированный ряд Фибоначчи для множителя серии убийств.
// Индекс за пределами таблицы прижимается к последнему элементу.
var comboTable = [...]int{1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987}

// ComboMultiplier возвращает множитель для n-го элемента ряда (n с нуля).
func ComboMultiplier(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= len(comboTable) {
		n = len(comboTable) - 1
	}
	return comboTable[n]
}

// KillReward считает очки за убийство зомби.
//
// aliveHumans - число живых жителей на НАЧАЛО хода (фиксируется один раз
// до всех убийств этого хода и не пересчитывается между ними).
// killIndex - порядковый номер убийства в пределах хода, начиная с 1.
func KillReward(aliveHumans, killIndex int) int {
	return aliveHumans * aliveHumans * 10 * ComboMultiplier(killIndex-1)
}

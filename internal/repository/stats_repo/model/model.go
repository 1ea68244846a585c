package model

// Состояние статистики спинов
type SpinStats struct {
	TotalSpins  int     // Сколько всего спинов сделано
	TotalStaked float64 // Сумма всех ставок
	TotalPaid   float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPaid/TotalStaked)*100

	SpinWindow []SpinSample // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinSample struct {
	Stake  float64
	Payout float64
	RTP    float64
}

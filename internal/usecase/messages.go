package usecase

// Шаблоны ответов. Язык ответов - польский.
const (
	msgSchedulePrompt      = "Podaj proszę miasto początkowe i docelowe (np. 'z Łodzi do Krakowa')."
	msgScheduleNext        = "Najbliższy pociąg z %s do %s odjeżdża o %s."
	msgScheduleAll         = "Wszystkie dostępne odjazdy z %s do %s: %s."
	msgScheduleCombined    = "Połączenia z %s do %s: %s. Najbliższy: %s."
	msgScheduleReverse     = "Rozkład jest dostępny w odwrotną stronę (%s → %s). Czy o to chodziło?"
	msgScheduleAlternative = "Nie mam rozkładu dla trasy %s → %s, ale mam informacje dla trasy %s → %s: %s."
	msgScheduleNoData      = "Niestety nie mam rozkładu dla trasy %s → %s."

	msgDelayCityPrompt  = "Podaj proszę miasto, z którego chcesz sprawdzić opóźnienia (np. 'opóźnienia z Krakowa')."
	msgDelayCity        = "Aktualne informacje dla %s: %s."
	msgDelayCityNoData  = "Brak informacji o opóźnieniach w %s."
	msgDelayTrainPrompt = "Podaj proszę numer pociągu (np. 'IC 1234')."
	msgDelayTrain       = "Pociąg %s: %s."
	msgDelayTrainNoData = "Brak informacji o opóźnieniach dla pociągu %s."
	msgDelayCityShort   = "Aktualnie dla %s: %s."
	msgDelayUnclear     = "Nie rozumiem, podaj proszę miasto lub numer pociągu, którego dotyczy zapytanie o opóźnienia."

	msgPricePrompt = "Podaj miasta początkowe i docelowe, np. 'ile kosztuje bilet z Łodzi do Krakowa'."
	msgPrice       = "Cena biletu z %s do %s: %s."
	msgPriceNoData = "Brak danych o cenie biletu dla trasy %s → %s. Możesz spróbować innych wariantów (np. różni przewoźnicy)."

	msgPlatformPrompt = "Podaj numer pociągu, np. 'IC 1234'."
	msgPlatform       = "Pociąg %s odjeżdża z %s."
	msgPlatformNoData = "Brak danych o peronie dla pociągu %s."

	msgTrainTypePrompt = "Podaj miasta początkowe i docelowe, np. 'jaki typ pociągu z Łodzi do Krakowa'."
	msgTrainType       = "Na trasie %s → %s kursuje pociąg typu: %s."
	msgTrainTypeNoData = "Brak danych o typie pociągu na trasie %s → %s."

	msgServicesPrompt = "Podaj numer pociągu, np. 'IC 1234', abym mógł sprawdzić usługi."
	msgServices       = "Pociąg %s oferuje: %s."
	msgServicesNoData = "Brak informacji o usługach w pociągu %s."

	msgCheckPrompt   = "Podaj proszę miasto początkowe i docelowe."
	msgCheckChecking = "Sprawdzam rozkład jazdy z %s do %s..."
	msgCheckResult   = "Najbliższy pociąg z %s do %s odjeżdża o %s 🚆"

	// checkScheduleDepartureTime - фиксированное время диагностического action
	checkScheduleDepartureTime = "12:45"
)

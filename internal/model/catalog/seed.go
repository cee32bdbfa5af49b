package catalog

// Seed provides the default bilingual question catalog shipped with the bot.
func Seed() []Language {
	return []Language{
		{
			Code:  "en",
			Label: "English",
			UI: UIStrings{
				Intro:           "Hi! I'm Deepsight. I'll ask you a short series of questions and then put together a personal deep analysis of your answers. Pick a language to begin.",
				ChooseLanguage:  "Which language would you like to continue in?",
				ChooseChain:     "Great. Which track shall we take?",
				ProgressFormat:  "Question %d of %d",
				TooLongFormat:   "That answer is a bit too long for me — please keep it under %d characters and try again.",
				AnalysisFormat:  "Here is your deep analysis:\n\n%s",
				PleaseWait:      "Thank you! Give me a moment to think your answers over...",
				SessionExpired:  "Your session has expired. Send /start to begin a new one.",
				CompletedHint:   "This survey is already finished. You can export the transcript or start over.",
				NothingToExport: "There is nothing to export yet — start a survey first.",
				ImportEmpty:     "I couldn't find any question/answer pairs in that document. Please check the format and try again.",
				NextActions:     "What would you like to do next?",
				ExportButton:    "Export transcript",
				RestartButton:   "Start over",
				DateLayout:      "January 2, 2006 15:04",
			},
			Chains: []Chain{
				{
					ID:    "self-discovery",
					Title: "Self-discovery",
					Questions: []string{
						"What part of your everyday life feels most like you?",
						"When did you last surprise yourself, and what did you do?",
						"What do people close to you misunderstand about you most often?",
						"If the next year went exactly your way, what would be different?",
						"What are you quietly proud of that you rarely mention?",
					},
					Intro:    "Let's take an honest look inward. Answer in your own words — there are no wrong answers here.",
					Congrats: "That's all of them — well done. Thoughtful answers like yours make for a much richer analysis.",
					Fallback: "I couldn't reach the analysis service this time, but your answers are saved in the transcript. Reading them back in one sitting is an analysis of its own — notice which answer you wrote fastest and which one you hesitated over.",
					Prompts: AIPrompts{
						System:     "You are an attentive, warm psychologist-interviewer. You are given a transcript of a self-discovery questionnaire. Write a flowing narrative analysis of the person behind the answers: recurring themes, tensions between answers, strengths they underplay. Address the person directly as \"you\". Do not repeat the questions back. No lists, no headings — prose only.",
						UserFormat: "Here is the completed questionnaire:\n\n%s\n\nWrite the deep analysis.",
					},
					Export: ExportLabels{
						Title:         "DEEPSIGHT — SELF-DISCOVERY TRANSCRIPT",
						QuestionLabel: "Question",
						AnswerLabel:   "Answer",
						AnalysisTitle: "DEEP ANALYSIS",
						Unavailable:   "Analysis unavailable for this session.",
						Footer:        "Generated by Deepsight. Keep this document — it reads differently a year from now.",
						Caption:       "Your self-discovery transcript and analysis.",
					},
				},
				{
					ID:    "career-compass",
					Title: "Career compass",
					Questions: []string{
						"What kind of work makes you lose track of time?",
						"Describe a workday from the last month you'd gladly repeat.",
						"What professional advice do people keep asking you for?",
						"What would you stop doing tomorrow if money didn't matter?",
						"Where do you want to be professionally in three years, in one sentence?",
					},
					Intro:    "Let's map where your work energizes you and where it drains you.",
					Congrats: "Done! You've just written the raw material for your own career brief.",
					Fallback: "The analysis service is unavailable right now, but the transcript itself is a solid career snapshot. Compare your answers to the first and fourth questions — the gap between them is usually where the next move hides.",
					Prompts: AIPrompts{
						System:     "You are a pragmatic career coach. You are given a transcript of a career questionnaire. Write a narrative analysis: where this person's energy actually goes, which skills others already rely on, and one concrete direction worth exploring next. Address the person directly. Prose only, no lists.",
						UserFormat: "Here is the completed questionnaire:\n\n%s\n\nWrite the career analysis.",
					},
					Export: ExportLabels{
						Title:         "DEEPSIGHT — CAREER COMPASS TRANSCRIPT",
						QuestionLabel: "Question",
						AnswerLabel:   "Answer",
						AnalysisTitle: "CAREER ANALYSIS",
						Unavailable:   "Analysis unavailable for this session.",
						Footer:        "Generated by Deepsight.",
						Caption:       "Your career compass transcript and analysis.",
					},
				},
			},
		},
		{
			Code:  "ru",
			Label: "Русский",
			UI: UIStrings{
				Intro:           "Привет! Я Deepsight. Я задам несколько вопросов, а затем соберу из ваших ответов персональный глубокий разбор. Выберите язык, чтобы начать.",
				ChooseLanguage:  "На каком языке продолжим?",
				ChooseChain:     "Отлично. Какой маршрут выберем?",
				ProgressFormat:  "Вопрос %d из %d",
				TooLongFormat:   "Ответ получился слишком длинным — пожалуйста, уложитесь в %d символов и попробуйте ещё раз.",
				AnalysisFormat:  "Ваш глубокий разбор:\n\n%s",
				PleaseWait:      "Спасибо! Дайте мне минуту обдумать ваши ответы...",
				SessionExpired:  "Ваша сессия истекла. Отправьте /start, чтобы начать заново.",
				CompletedHint:   "Этот опрос уже завершён. Можно выгрузить стенограмму или начать заново.",
				NothingToExport: "Пока нечего выгружать — сначала пройдите опрос.",
				ImportEmpty:     "Я не нашёл в документе ни одной пары вопрос/ответ. Проверьте формат и попробуйте снова.",
				NextActions:     "Что делаем дальше?",
				ExportButton:    "Выгрузить стенограмму",
				RestartButton:   "Начать заново",
				DateLayout:      "02.01.2006 15:04",
			},
			Chains: []Chain{
				{
					ID:    "self-discovery",
					Title: "Самопознание",
					Questions: []string{
						"Какая часть вашей повседневной жизни больше всего похожа на вас настоящего?",
						"Когда вы в последний раз удивили самого себя — и чем?",
						"Что близкие люди чаще всего понимают в вас неправильно?",
						"Если следующий год пройдёт ровно так, как вы хотите, — что изменится?",
						"Чем вы тихо гордитесь, но редко об этом говорите?",
					},
					Intro:    "Давайте честно посмотрим внутрь. Отвечайте своими словами — неправильных ответов здесь нет.",
					Congrats: "Это были все вопросы — отличная работа. Чем вдумчивее ответы, тем глубже получается разбор.",
					Fallback: "Сейчас мне не удалось связаться с сервисом анализа, но ваши ответы сохранены в стенограмме. Перечитайте их подряд — это уже разбор: заметьте, на какой вопрос вы ответили быстрее всего, а над каким задумались.",
					Prompts: AIPrompts{
						System:     "Ты внимательный и тёплый психолог-интервьюер. Тебе дана стенограмма анкеты самопознания. Напиши связный нарративный разбор человека за этими ответами: повторяющиеся темы, противоречия между ответами, сильные стороны, которые он преуменьшает. Обращайся к человеку на «вы». Не повторяй вопросы. Только проза, без списков и заголовков.",
						UserFormat: "Вот заполненная анкета:\n\n%s\n\nНапиши глубокий разбор.",
					},
					Export: ExportLabels{
						Title:         "DEEPSIGHT — СТЕНОГРАММА «САМОПОЗНАНИЕ»",
						QuestionLabel: "Вопрос",
						AnswerLabel:   "Ответ",
						AnalysisTitle: "ГЛУБОКИЙ РАЗБОР",
						Unavailable:   "Разбор для этой сессии недоступен.",
						Footer:        "Сформировано Deepsight. Сохраните документ — через год он прочитается иначе.",
						Caption:       "Ваша стенограмма и разбор.",
					},
				},
				{
					ID:    "career-compass",
					Title: "Карьерный компас",
					Questions: []string{
						"За какой работой вы теряете счёт времени?",
						"Опишите рабочий день за последний месяц, который вы бы с радостью повторили.",
						"За каким профессиональным советом к вам постоянно обращаются?",
						"Чем бы вы перестали заниматься уже завтра, если бы деньги не имели значения?",
						"Где вы хотите быть профессионально через три года — одним предложением?",
					},
					Intro:    "Давайте разберёмся, где работа вас заряжает, а где выматывает.",
					Congrats: "Готово! Вы только что написали черновик собственного карьерного брифа.",
					Fallback: "Сервис анализа сейчас недоступен, но сама стенограмма — уже хороший карьерный срез. Сравните ответы на первый и четвёртый вопросы: в зазоре между ними обычно и прячется следующий шаг.",
					Prompts: AIPrompts{
						System:     "Ты прагматичный карьерный консультант. Тебе дана стенограмма карьерной анкеты. Напиши нарративный разбор: куда на самом деле уходит энергия этого человека, на какие его навыки уже опираются другие, и одно конкретное направление, которое стоит исследовать. Обращайся к человеку напрямую. Только проза, без списков.",
						UserFormat: "Вот заполненная анкета:\n\n%s\n\nНапиши карьерный разбор.",
					},
					Export: ExportLabels{
						Title:         "DEEPSIGHT — СТЕНОГРАММА «КАРЬЕРНЫЙ КОМПАС»",
						QuestionLabel: "Вопрос",
						AnswerLabel:   "Ответ",
						AnalysisTitle: "КАРЬЕРНЫЙ РАЗБОР",
						Unavailable:   "Разбор для этой сессии недоступен.",
						Footer:        "Сформировано Deepsight.",
						Caption:       "Ваша стенограмма и разбор.",
					},
				},
			},
		},
	}
}

package catalog

// The 16 built-in moods. Display attributes match the reference client.
var defaultMoods = []Mood{
	{ID: "euphoric", Emoji: "🤩", Label: "Euphoric", Color: "bg-gradient-to-br from-yellow-200 to-orange-300 border-orange-400", Particles: "gold", Intensity: 5, Category: CategoryPositive},
	{ID: "happy", Emoji: "😊", Label: "Happy", Color: "bg-gradient-to-br from-yellow-100 to-yellow-200 border-yellow-300", Particles: "yellow", Intensity: 4, Category: CategoryPositive},
	{ID: "excited", Emoji: "🤗", Label: "Excited", Color: "bg-gradient-to-br from-orange-100 to-pink-200 border-orange-300", Particles: "orange", Intensity: 4, Category: CategoryPositive},
	{ID: "grateful", Emoji: "🙏", Label: "Grateful", Color: "bg-gradient-to-br from-purple-100 to-pink-200 border-purple-300", Particles: "purple", Intensity: 4, Category: CategoryPositive},
	{ID: "loved", Emoji: "🥰", Label: "Loved", Color: "bg-gradient-to-br from-pink-100 to-red-200 border-pink-300", Particles: "pink", Intensity: 4, Category: CategoryPositive},
	{ID: "proud", Emoji: "😤", Label: "Proud", Color: "bg-gradient-to-br from-indigo-100 to-purple-200 border-indigo-300", Particles: "indigo", Intensity: 4, Category: CategoryPositive},
	{ID: "calm", Emoji: "😌", Label: "Calm", Color: "bg-gradient-to-br from-green-100 to-blue-100 border-green-300", Particles: "green", Intensity: 3, Category: CategoryNeutral},
	{ID: "content", Emoji: "😊", Label: "Content", Color: "bg-gradient-to-br from-blue-100 to-indigo-100 border-blue-300", Particles: "blue", Intensity: 3, Category: CategoryNeutral},
	{ID: "tired", Emoji: "😴", Label: "Tired", Color: "bg-gradient-to-br from-gray-100 to-gray-200 border-gray-300", Particles: "gray", Intensity: 2, Category: CategoryNeutral},
	{ID: "confused", Emoji: "🤔", Label: "Confused", Color: "bg-gradient-to-br from-yellow-100 to-orange-100 border-yellow-300", Particles: "yellow", Intensity: 2, Category: CategoryNeutral},
	{ID: "anxious", Emoji: "😰", Label: "Anxious", Color: "bg-gradient-to-br from-purple-100 to-purple-200 border-purple-300", Particles: "purple", Intensity: 2, Category: CategoryNegative},
	{ID: "sad", Emoji: "😢", Label: "Sad", Color: "bg-gradient-to-br from-blue-100 to-blue-200 border-blue-300", Particles: "blue", Intensity: 2, Category: CategoryNegative},
	{ID: "angry", Emoji: "😠", Label: "Angry", Color: "bg-gradient-to-br from-red-100 to-red-200 border-red-300", Particles: "red", Intensity: 2, Category: CategoryNegative},
	{ID: "frustrated", Emoji: "😤", Label: "Frustrated", Color: "bg-gradient-to-br from-orange-100 to-red-100 border-orange-300", Particles: "orange", Intensity: 2, Category: CategoryNegative},
	{ID: "overwhelmed", Emoji: "😵", Label: "Overwhelmed", Color: "bg-gradient-to-br from-red-100 to-purple-100 border-red-300", Particles: "red", Intensity: 1, Category: CategoryNegative},
	{ID: "lonely", Emoji: "😔", Label: "Lonely", Color: "bg-gradient-to-br from-gray-100 to-blue-100 border-gray-300", Particles: "gray", Intensity: 2, Category: CategoryNegative},
}

var defaultAchievements = []Achievement{
	{ID: "first_entry", Name: "First Step", Description: "Record your first mood", Icon: "🌟", Category: "milestone", Rarity: "common",
		Criteria: map[string]int{CriteriaTotalEntries: 1}},
	{ID: "week_streak", Name: "Week Warrior", Description: "7 days in a row", Icon: "🔥", Category: "streak", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaCurrentStreak: 7}},
	{ID: "month_streak", Name: "Monthly Master", Description: "30 days in a row", Icon: "👑", Category: "streak", Rarity: "rare",
		Criteria: map[string]int{CriteriaCurrentStreak: 30}},
	{ID: "mood_explorer", Name: "Mood Explorer", Description: "Try 8 different moods", Icon: "🌈", Category: "variety", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaDistinctMoods: 8}},
	{ID: "gratitude_guru", Name: "Gratitude Guru", Description: "Record 20 grateful moods", Icon: "🙏", Category: "mood", Rarity: "rare",
		Criteria: map[string]int{CriteriaMoodCount: 20}, MoodID: "grateful"},
	{ID: "zen_master", Name: "Zen Master", Description: "Complete 10 meditation sessions", Icon: "🧘", Category: "wellness", Rarity: "rare",
		Criteria: map[string]int{CriteriaMeditations: 10}},
	{ID: "social_butterfly", Name: "Social Butterfly", Description: "Add 5 friends", Icon: "🦋", Category: "social", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaFriends: 5}},
	{ID: "voice_artist", Name: "Voice Artist", Description: "Record 10 voice notes", Icon: "🎤", Category: "media", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaVoiceNotes: 10}},
	{ID: "photographer", Name: "Mood Photographer", Description: "Attach 15 photos", Icon: "📸", Category: "media", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaPhotos: 15}},
	{ID: "consistency_champion", Name: "Consistency Champion", Description: "Log moods for 100 days", Icon: "⚡", Category: "milestone", Rarity: "epic",
		Criteria: map[string]int{CriteriaDistinctDays: 100}},
	{ID: "emotional_intelligence", Name: "EQ Master", Description: "Use all 16 mood types", Icon: "🧠", Category: "variety", Rarity: "epic",
		Criteria: map[string]int{CriteriaAllMoodsUsed: 1}},
	{ID: "weather_watcher", Name: "Weather Watcher", Description: "Log moods in 3 different weather conditions", Icon: "🌦️", Category: "context", Rarity: "common",
		Criteria: map[string]int{CriteriaDistinctWeather: 3}},
	{ID: "night_owl", Name: "Night Owl", Description: "Log 5 late-night moods", Icon: "🦉", Category: "context", Rarity: "uncommon",
		Criteria: map[string]int{CriteriaLateNightEntries: 5}},
}

package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyTabHome             = "tab_home"
	KeyTabBookmark         = "tab_bookmark"
	KeyTabCreate           = "tab_create"
	KeyTabProfile          = "tab_profile"
	KeyWelcomeBack         = "welcome_back"
	KeySearchPlaceholder   = "search_placeholder"
	KeyMissingQuery        = "missing_query"
	KeyMissingQueryMessage = "missing_query_message"
	KeyTrendingVideos      = "trending_videos"
	KeySearchResults       = "search_results"
	KeyNoVideosFound       = "no_videos_found"
	KeyBack                = "back"
	KeyLoadingFeed         = "loading_feed"
	KeyFeedLoaded          = "feed_loaded"
	KeyFeedLoadFailed      = "feed_load_failed"
	KeyPlaybackFailed      = "playback_failed"
	KeyNowPlaying          = "now_playing"
	KeyUploadVideo         = "upload_video"
	KeyVideoTitle          = "video_title"
	KeyVideoSource         = "video_source"
	KeyThumbnailSource     = "thumbnail_source"
	KeyPublish             = "publish"
	KeyVideoAdded          = "video_added"
	KeyVideoRejected       = "video_rejected"
	KeyRequiredField       = "required_field"
	KeySavedVideos         = "saved_videos"
	KeyNoSavedVideos       = "no_saved_videos"
	KeyFeedStats           = "feed_stats"
	KeyVisibilityThreshold = "visibility_threshold"
	KeyTransitionDuration  = "transition_duration"
	KeyPlayerCommand       = "player_command"
	KeyFeedFile            = "feed_file"
	KeyPlaylist            = "playlist"
	KeyReloadFeed          = "reload_feed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Reelfeed",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyTabHome:             "Home",
		KeyTabBookmark:         "Bookmark",
		KeyTabCreate:           "Create",
		KeyTabProfile:          "Profile",
		KeyWelcomeBack:         "Welcome Back",
		KeySearchPlaceholder:   "Search a video topic",
		KeyMissingQuery:        "Missing Query",
		KeyMissingQueryMessage: "Please input something to search results across database",
		KeyTrendingVideos:      "Trending Videos",
		KeySearchResults:       "Search Results for \"%s\"",
		KeyNoVideosFound:       "No Videos Found",
		KeyBack:                "Back",
		KeyLoadingFeed:         "Loading videos...",
		KeyFeedLoaded:          "%d videos loaded",
		KeyFeedLoadFailed:      "Failed to load videos",
		KeyPlaybackFailed:      "Playback failed",
		KeyNowPlaying:          "Now playing",
		KeyUploadVideo:         "Upload Video",
		KeyVideoTitle:          "Video Title",
		KeyVideoSource:         "Video URL or file",
		KeyThumbnailSource:     "Thumbnail URL (optional)",
		KeyPublish:             "Submit & Publish",
		KeyVideoAdded:          "Video added to trending",
		KeyVideoRejected:       "Video already in feed",
		KeyRequiredField:       "This field is required",
		KeySavedVideos:         "Saved Videos",
		KeyNoSavedVideos:       "No saved videos yet",
		KeyFeedStats:           "%d videos in your feed",
		KeyVisibilityThreshold: "Visibility Threshold (%)",
		KeyTransitionDuration:  "Transition Duration (ms)",
		KeyPlayerCommand:       "Player Command",
		KeyFeedFile:            "Feed File",
		KeyPlaylist:            "YouTube Playlist",
		KeyReloadFeed:          "Reload Feed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Reelfeed",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyTabHome:             "Главная",
		KeyTabBookmark:         "Закладки",
		KeyTabCreate:           "Создать",
		KeyTabProfile:          "Профиль",
		KeyWelcomeBack:         "С возвращением",
		KeySearchPlaceholder:   "Поиск видео по теме",
		KeyMissingQuery:        "Пустой запрос",
		KeyMissingQueryMessage: "Введите что-нибудь для поиска по базе",
		KeyTrendingVideos:      "Популярные видео",
		KeySearchResults:       "Результаты поиска \"%s\"",
		KeyNoVideosFound:       "Видео не найдены",
		KeyBack:                "Назад",
		KeyLoadingFeed:         "Загрузка видео...",
		KeyFeedLoaded:          "Загружено видео: %d",
		KeyFeedLoadFailed:      "Не удалось загрузить видео",
		KeyPlaybackFailed:      "Ошибка воспроизведения",
		KeyNowPlaying:          "Воспроизводится",
		KeyUploadVideo:         "Загрузить видео",
		KeyVideoTitle:          "Название видео",
		KeyVideoSource:         "URL или файл видео",
		KeyThumbnailSource:     "URL обложки (необязательно)",
		KeyPublish:             "Опубликовать",
		KeyVideoAdded:          "Видео добавлено в популярные",
		KeyVideoRejected:       "Видео уже в ленте",
		KeyRequiredField:       "Обязательное поле",
		KeySavedVideos:         "Сохранённые видео",
		KeyNoSavedVideos:       "Сохранённых видео пока нет",
		KeyFeedStats:           "Видео в ленте: %d",
		KeyVisibilityThreshold: "Порог видимости (%)",
		KeyTransitionDuration:  "Длительность перехода (мс)",
		KeyPlayerCommand:       "Команда плеера",
		KeyFeedFile:            "Файл ленты",
		KeyPlaylist:            "Плейлист YouTube",
		KeyReloadFeed:          "Обновить ленту",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Reelfeed",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyTabHome:             "Início",
		KeyTabBookmark:         "Salvos",
		KeyTabCreate:           "Criar",
		KeyTabProfile:          "Perfil",
		KeyWelcomeBack:         "Bem-vindo de volta",
		KeySearchPlaceholder:   "Pesquise um tema de vídeo",
		KeyMissingQuery:        "Consulta vazia",
		KeyMissingQueryMessage: "Digite algo para pesquisar no banco de dados",
		KeyTrendingVideos:      "Vídeos em alta",
		KeySearchResults:       "Resultados para \"%s\"",
		KeyNoVideosFound:       "Nenhum vídeo encontrado",
		KeyBack:                "Voltar",
		KeyLoadingFeed:         "Carregando vídeos...",
		KeyFeedLoaded:          "%d vídeos carregados",
		KeyFeedLoadFailed:      "Falha ao carregar vídeos",
		KeyPlaybackFailed:      "Falha na reprodução",
		KeyNowPlaying:          "Reproduzindo",
		KeyUploadVideo:         "Enviar vídeo",
		KeyVideoTitle:          "Título do vídeo",
		KeyVideoSource:         "URL ou arquivo do vídeo",
		KeyThumbnailSource:     "URL da miniatura (opcional)",
		KeyPublish:             "Enviar e publicar",
		KeyVideoAdded:          "Vídeo adicionado aos destaques",
		KeyVideoRejected:       "Vídeo já está no feed",
		KeyRequiredField:       "Campo obrigatório",
		KeySavedVideos:         "Vídeos salvos",
		KeyNoSavedVideos:       "Nenhum vídeo salvo ainda",
		KeyFeedStats:           "%d vídeos no seu feed",
		KeyVisibilityThreshold: "Limite de visibilidade (%)",
		KeyTransitionDuration:  "Duração da transição (ms)",
		KeyPlayerCommand:       "Comando do player",
		KeyFeedFile:            "Arquivo do feed",
		KeyPlaylist:            "Playlist do YouTube",
		KeyReloadFeed:          "Recarregar feed",
	}
}

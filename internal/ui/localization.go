package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	// Menus
	KeyFile          = "file"
	KeyView          = "view"
	KeyHelp          = "help"
	KeyExportToExcel = "export_to_excel"
	KeyQuit          = "quit"
	KeyHome          = "home"
	KeyDataTable     = "data_table"
	KeySettings      = "settings"
	KeyCheckUpdates  = "check_updates"
	KeyAbout         = "about"

	// Home
	KeyWelcome       = "welcome"
	KeyAddSampleData = "add_sample_data"
	KeyOpenDataTable = "open_data_table"
	KeyQuickStats    = "quick_stats"
	KeyTotalRecords  = "total_records"
	KeyLastUpdated   = "last_updated"
	KeyVersion       = "version"
	KeyNever         = "never"

	// Data table
	KeyClearData   = "clear_data"
	KeyColumnID    = "column_id"
	KeyColumnName  = "column_name"
	KeyColumnValue = "column_value"
	KeyColumnDate  = "column_date"

	// Settings
	KeyGeneralSettings  = "general_settings"
	KeyAutoCheckUpdates = "auto_check_updates"
	KeyTheme            = "theme"
	KeyThemeDark        = "theme_dark"
	KeyThemeLight       = "theme_light"
	KeyLanguage         = "language"
	KeyExportDirectory  = "export_directory"
	KeyExportDirHint    = "export_directory_hint"
	KeyBrowse           = "browse"
	KeyUpdateSettings   = "update_settings"
	KeyVersionPolicy    = "version_policy"
	KeyRepoOwner        = "repo_owner"
	KeyRepoName         = "repo_name"
	KeyBinaryName       = "binary_name"
	KeySave             = "save"
	KeySettingsSaved    = "settings_saved"
	KeyDirectoryFailed  = "directory_failed"
	KeyCheckUpdatesNow  = "check_updates_now"
	KeyUpdateStatus     = "update_status"

	// About
	KeyAboutTitle    = "about_title"
	KeyBuiltWith     = "built_with"
	KeyFeatures      = "features"
	KeyFeatureGUI    = "feature_gui"
	KeyFeatureExport = "feature_export"
	KeyFeatureUpdate = "feature_update"
	KeyFeatureUI     = "feature_ui"
	KeyVisitRepo     = "visit_repo"

	// Status line
	KeyReady         = "ready"
	KeyExportedTo    = "exported_to"
	KeyExportFailed  = "export_failed"
	KeyShowInFolder  = "show_in_folder"
	KeyOpenFile      = "open_file"
	KeyErrorOpening  = "error_opening"
	KeySampleAdded   = "sample_added"
	KeyDataCleared   = "data_cleared"
	KeyChecking      = "checking"
	KeyUpToDate      = "up_to_date"
	KeyAvailable     = "available"
	KeyDownloading   = "downloading"
	KeyDownloaded    = "downloaded"
	KeyCheckFailed   = "check_failed"
	KeyApplyFailed   = "apply_failed"
	KeyUpdateBusy    = "update_busy"
	KeyRestartFailed = "restart_failed"

	// Update dialog
	KeyUpdateAvailable   = "update_available"
	KeyNewVersionHeading = "new_version_heading"
	KeyCurrentVersion    = "current_version"
	KeyNewVersion        = "new_version"
	KeyUpdatePrompt      = "update_prompt"
	KeyLater             = "later"
	KeyUpdateNow         = "update_now"
	KeyDownloadWait      = "download_wait"
	KeyDownloadSuccess   = "download_success"
	KeyRestartPrompt     = "restart_prompt"
	KeyRestartNow        = "restart_now"
	KeyContinue          = "continue"
	KeyUpdateFailed      = "update_failed"
	KeyErrorPrefix       = "error_prefix"
	KeyClose             = "close"
	KeyRetry             = "retry"
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

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
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

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "Desktop Application with Auto-Update",

		KeyFile:          "File",
		KeyView:          "View",
		KeyHelp:          "Help",
		KeyExportToExcel: "Export to Excel",
		KeyQuit:          "Quit",
		KeyHome:          "Home",
		KeyDataTable:     "Data Table",
		KeySettings:      "Settings",
		KeyCheckUpdates:  "Check for Updates",
		KeyAbout:         "About",

		KeyWelcome:       "Welcome to Desktop Application",
		KeyAddSampleData: "Add Sample Data",
		KeyOpenDataTable: "Open Data Table",
		KeyQuickStats:    "Quick Stats",
		KeyTotalRecords:  "Total Records:",
		KeyLastUpdated:   "Last Updated:",
		KeyVersion:       "Version:",
		KeyNever:         "Never",

		KeyClearData:   "Clear Data",
		KeyColumnID:    "ID",
		KeyColumnName:  "Name",
		KeyColumnValue: "Value",
		KeyColumnDate:  "Date",

		KeyGeneralSettings:  "General",
		KeyAutoCheckUpdates: "Check for updates on startup",
		KeyTheme:            "Theme:",
		KeyThemeDark:        "Dark",
		KeyThemeLight:       "Light",
		KeyLanguage:         "Language:",
		KeyExportDirectory:  "Export Directory:",
		KeyExportDirHint:    "Downloads folder",
		KeyBrowse:           "Browse",
		KeyUpdateSettings:   "Update Settings",
		KeyVersionPolicy:    "Version Policy:",
		KeyRepoOwner:        "Repository Owner:",
		KeyRepoName:         "Repository Name:",
		KeyBinaryName:       "Binary Name:",
		KeySave:             "Save",
		KeySettingsSaved:    "Settings saved",
		KeyDirectoryFailed:  "Cannot create export directory: %s",
		KeyCheckUpdatesNow:  "Check for Updates Now",
		KeyUpdateStatus:     "Update Status: %s",

		KeyAboutTitle:    "About Desktop Application",
		KeyBuiltWith:     "Built with Go and Fyne",
		KeyFeatures:      "Features:",
		KeyFeatureGUI:    "• Cross-platform desktop GUI",
		KeyFeatureExport: "• Excel export functionality",
		KeyFeatureUpdate: "• Automatic updates from GitHub",
		KeyFeatureUI:     "• Modern, responsive interface",
		KeyVisitRepo:     "Visit GitHub Repository",

		KeyReady:         "Ready",
		KeyExportedTo:    "Exported to: %s",
		KeyExportFailed:  "Export failed: %s",
		KeyShowInFolder:  "Show in folder",
		KeyOpenFile:      "Open",
		KeyErrorOpening:  "Error opening file: %s",
		KeySampleAdded:   "Added %d sample records",
		KeyDataCleared:   "Data cleared",
		KeyChecking:      "Checking for updates...",
		KeyUpToDate:      "You are running the latest version",
		KeyAvailable:     "Update available: v%s",
		KeyDownloading:   "Downloading update...",
		KeyDownloaded:    "Update ready! Restart app.",
		KeyCheckFailed:   "Update check failed",
		KeyApplyFailed:   "Update failed",
		KeyUpdateBusy:    "An update operation is already running",
		KeyRestartFailed: "Restart failed: %s",

		KeyUpdateAvailable:   "Update Available",
		KeyNewVersionHeading: "New Version Available!",
		KeyCurrentVersion:    "Current version:",
		KeyNewVersion:        "New version:",
		KeyUpdatePrompt:      "A new version of the application is available. Would you like to update now?",
		KeyLater:             "Later",
		KeyUpdateNow:         "Update Now",
		KeyDownloadWait:      "Please wait while the update is being downloaded.",
		KeyDownloadSuccess:   "Update downloaded successfully!",
		KeyRestartPrompt:     "Please restart the application to complete the update.",
		KeyRestartNow:        "Restart Now",
		KeyContinue:          "Continue",
		KeyUpdateFailed:      "Update failed!",
		KeyErrorPrefix:       "Error: %s",
		KeyClose:             "Close",
		KeyRetry:             "Retry",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle: "Aplicación de Escritorio con Actualización Automática",

		KeyFile:          "Archivo",
		KeyView:          "Ver",
		KeyHelp:          "Ayuda",
		KeyExportToExcel: "Exportar a Excel",
		KeyQuit:          "Salir",
		KeyHome:          "Inicio",
		KeyDataTable:     "Tabla de Datos",
		KeySettings:      "Configuración",
		KeyCheckUpdates:  "Buscar Actualizaciones",
		KeyAbout:         "Acerca de",

		KeyWelcome:       "Bienvenido a la Aplicación de Escritorio",
		KeyAddSampleData: "Agregar Datos de Ejemplo",
		KeyOpenDataTable: "Abrir Tabla de Datos",
		KeyQuickStats:    "Estadísticas Rápidas",
		KeyTotalRecords:  "Total de Registros:",
		KeyLastUpdated:   "Última Actualización:",
		KeyVersion:       "Versión:",
		KeyNever:         "Nunca",

		KeyClearData:   "Borrar Datos",
		KeyColumnID:    "ID",
		KeyColumnName:  "Nombre",
		KeyColumnValue: "Valor",
		KeyColumnDate:  "Fecha",

		KeyGeneralSettings:  "General",
		KeyAutoCheckUpdates: "Buscar actualizaciones al iniciar",
		KeyTheme:            "Tema:",
		KeyThemeDark:        "Oscuro",
		KeyThemeLight:       "Claro",
		KeyLanguage:         "Idioma:",
		KeyExportDirectory:  "Directorio de Exportación:",
		KeyExportDirHint:    "Carpeta de descargas",
		KeyBrowse:           "Examinar",
		KeyUpdateSettings:   "Configuración de Actualizaciones",
		KeyVersionPolicy:    "Política de Versiones:",
		KeyRepoOwner:        "Propietario del Repositorio:",
		KeyRepoName:         "Nombre del Repositorio:",
		KeyBinaryName:       "Nombre del Binario:",
		KeySave:             "Guardar",
		KeySettingsSaved:    "Configuración guardada",
		KeyDirectoryFailed:  "No se puede crear el directorio de exportación: %s",
		KeyCheckUpdatesNow:  "Buscar Actualizaciones Ahora",
		KeyUpdateStatus:     "Estado de Actualización: %s",

		KeyAboutTitle:    "Acerca de la Aplicación de Escritorio",
		KeyBuiltWith:     "Hecho con Go y Fyne",
		KeyFeatures:      "Características:",
		KeyFeatureGUI:    "• Interfaz de escritorio multiplataforma",
		KeyFeatureExport: "• Exportación a Excel",
		KeyFeatureUpdate: "• Actualizaciones automáticas desde GitHub",
		KeyFeatureUI:     "• Interfaz moderna y adaptable",
		KeyVisitRepo:     "Visitar el Repositorio en GitHub",

		KeyReady:         "Listo",
		KeyExportedTo:    "Exportado a: %s",
		KeyExportFailed:  "Error al exportar: %s",
		KeyShowInFolder:  "Mostrar en carpeta",
		KeyOpenFile:      "Abrir",
		KeyErrorOpening:  "Error al abrir el archivo: %s",
		KeySampleAdded:   "Se agregaron %d registros de ejemplo",
		KeyDataCleared:   "Datos borrados",
		KeyChecking:      "Buscando actualizaciones...",
		KeyUpToDate:      "Está usando la última versión",
		KeyAvailable:     "Actualización disponible: v%s",
		KeyDownloading:   "Descargando actualización...",
		KeyDownloaded:    "¡Actualización lista! Reinicie la aplicación.",
		KeyCheckFailed:   "Error al buscar actualizaciones",
		KeyApplyFailed:   "Error al actualizar",
		KeyUpdateBusy:    "Ya hay una operación de actualización en curso",
		KeyRestartFailed: "Error al reiniciar: %s",

		KeyUpdateAvailable:   "Actualización Disponible",
		KeyNewVersionHeading: "¡Nueva Versión Disponible!",
		KeyCurrentVersion:    "Versión actual:",
		KeyNewVersion:        "Nueva versión:",
		KeyUpdatePrompt:      "Hay una nueva versión de la aplicación. ¿Desea actualizar ahora?",
		KeyLater:             "Más tarde",
		KeyUpdateNow:         "Actualizar Ahora",
		KeyDownloadWait:      "Espere mientras se descarga la actualización.",
		KeyDownloadSuccess:   "¡Actualización descargada correctamente!",
		KeyRestartPrompt:     "Reinicie la aplicación para completar la actualización.",
		KeyRestartNow:        "Reiniciar Ahora",
		KeyContinue:          "Continuar",
		KeyUpdateFailed:      "¡La actualización falló!",
		KeyErrorPrefix:       "Error: %s",
		KeyClose:             "Cerrar",
		KeyRetry:             "Reintentar",
	}
}

package catalog

// Services returns the built-in system-service table, in generation order.
// Each call returns a fresh slice.
func Services() []ServiceEntry {
	entries := []ServiceEntry{
		{Constant: "WINDOW_SERVICE", TypeName: "android.view.WindowManager"},
		{Constant: "LAYOUT_INFLATER_SERVICE", TypeName: "android.view.LayoutInflater"},
		{Constant: "ACTIVITY_SERVICE", TypeName: "android.app.ActivityManager"},
		{Constant: "POWER_SERVICE", TypeName: "android.os.PowerManager"},
		{Constant: "ALARM_SERVICE", TypeName: "android.app.AlarmManager"},
		{Constant: "NOTIFICATION_SERVICE", TypeName: "android.app.NotificationManager"},
		{Constant: "KEYGUARD_SERVICE", TypeName: "android.app.KeyguardManager"},
		{Constant: "LOCATION_SERVICE", TypeName: "android.location.LocationManager"},
		{Constant: "SEARCH_SERVICE", TypeName: "android.app.SearchManager"},
		{Constant: "SENSOR_SERVICE", TypeName: "android.hardware.SensorManager"},
		{Constant: "STORAGE_SERVICE", TypeName: "android.os.storage.StorageManager"},
		{Constant: "VIBRATOR_MANAGER_SERVICE", TypeName: "android.os.VibratorManager"},
		{Constant: "VIBRATOR_SERVICE", TypeName: "android.os.Vibrator"},
		{Constant: "CONNECTIVITY_SERVICE", TypeName: "android.net.ConnectivityManager"},
		{Constant: "WIFI_SERVICE", TypeName: "android.net.wifi.WifiManager"},
		{Constant: "AUDIO_SERVICE", TypeName: "android.media.AudioManager"},
		{Constant: "MEDIA_ROUTER_SERVICE", TypeName: "android.media.MediaRouter"},
		{Constant: "TELEPHONY_SERVICE", TypeName: "android.telephony.TelephonyManager"},
		{Constant: "TELEPHONY_SUBSCRIPTION_SERVICE", TypeName: "android.telephony.SubscriptionManager"},
		{Constant: "CARRIER_CONFIG_SERVICE", TypeName: "android.telephony.CarrierConfigManager"},
		{Constant: "EUICC_SERVICE", TypeName: "android.telephony.euicc.EuiccManager"},
		{Constant: "INPUT_METHOD_SERVICE", TypeName: "android.view.inputmethod.InputMethodManager"},
		{Constant: "UI_MODE_SERVICE", TypeName: "android.app.UiModeManager"},
		{Constant: "DOWNLOAD_SERVICE", TypeName: "android.app.DownloadManager"},
		{Constant: "BATTERY_SERVICE", TypeName: "android.os.BatteryManager"},
		{Constant: "JOB_SCHEDULER_SERVICE", TypeName: "android.app.job.JobScheduler"},
		{Constant: "NETWORK_STATS_SERVICE", TypeName: "android.app.usage.NetworkStatsManager"},
		{Constant: "HARDWARE_PROPERTIES_SERVICE", TypeName: "android.os.HardwarePropertiesManager"},
		{Constant: "DOMAIN_VERIFICATION_SERVICE", TypeName: "android.content.pm.verify.domain.DomainVerificationManager"},
		{Constant: "DISPLAY_HASH_SERVICE", TypeName: "android.view.displayhash.DisplayHashManager"},
	}
	for i := range entries {
		entries[i].Origin = Origin{Index: i + 1}
	}
	return entries
}

// Settings returns the built-in settings-intent table, in generation order.
// Each call returns a fresh slice.
func Settings() []SettingsEntry {
	entries := []SettingsEntry{
		{Action: "ACTION_VPN_SETTINGS", Doc: "VPN settings screen, may not exist"},
		{Action: "ACTION_WIFI_SETTINGS", Doc: "Wi-Fi settings screen"},
		{Action: "ACTION_WIFI_IP_SETTINGS", Doc: "Wi-Fi IP settings"},
		{Action: "ACTION_BLUETOOTH_SETTINGS", Doc: "Bluetooth settings"},
		{Action: "ACTION_CAST_SETTINGS", Doc: "Cast settings"},
		{Action: "ACTION_DATE_SETTINGS", Doc: "Date and time settings"},
		{Action: "ACTION_SOUND_SETTINGS", Doc: "Sound settings"},
		{Action: "ACTION_DISPLAY_SETTINGS", Doc: "Display settings"},
		{Action: "ACTION_LOCALE_SETTINGS", Doc: "Language settings"},
		{Action: "ACTION_VOICE_INPUT_SETTINGS", Doc: "Assist app and voice input settings"},
		{Action: "ACTION_INPUT_METHOD_SETTINGS", Doc: "Language and input method settings"},
		{Action: "ACTION_USER_DICTIONARY_SETTINGS", Doc: "Personal dictionary settings screen"},
		{Action: "ACTION_INTERNAL_STORAGE_SETTINGS", Doc: "Internal storage settings screen"},
		{Action: "ACTION_SEARCH_SETTINGS", Doc: "Search settings screen"},
		{Action: "ACTION_APPLICATION_DEVELOPMENT_SETTINGS", Doc: "Developer options"},
		{Action: "ACTION_DEVICE_INFO_SETTINGS", Doc: "Device status information screen"},
		{Action: "ACTION_DREAM_SETTINGS", Doc: "Screen saver settings screen"},
		{Action: "ACTION_NOTIFICATION_LISTENER_SETTINGS", Doc: "Notification access settings screen"},
		{Action: "ACTION_NOTIFICATION_POLICY_ACCESS_SETTINGS", Doc: "Do Not Disturb access settings screen"},
		{Action: "ACTION_CAPTIONING_SETTINGS", Doc: "Captions settings screen"},
		{Action: "ACTION_PRINT_SETTINGS", Doc: "Printing settings screen"},
		{Action: "ACTION_BATTERY_SAVER_SETTINGS", Doc: "Battery saver screen"},
		{Action: "ACTION_HOME_SETTINGS", Doc: "Home screen settings"},
	}
	for i := range entries {
		entries[i].Origin = Origin{Index: i + 1}
	}
	return entries
}

// Builtin returns both built-in tables as one catalog.
func Builtin() Catalog {
	return Catalog{Services: Services(), Settings: Settings()}
}

package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
// 店面是双语的，所以同时携带阿拉伯语文案，由 response 层一并返回。
type Definition struct {
	Code      string
	Message   string
	MessageAr string
}

// 认证相关错误。
var (
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized", MessageAr: "غير مصرح"}
	InvalidCredentials = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", MessageAr: "بيانات الدخول غير صحيحة"}
	AccountInactive    = Definition{Code: "ACCOUNT_INACTIVE", Message: "Account is inactive, contact the manager", MessageAr: "حسابك غير نشط، تواصل مع المدير"}
	PageForbidden      = Definition{Code: "PAGE_FORBIDDEN", Message: "No access to this page", MessageAr: "ليس لديك صلاحية الوصول لهذه الصفحة"}
	PasswordTooShort   = Definition{Code: "PASSWORD_TOO_SHORT", Message: "Password must be at least 6 characters", MessageAr: "كلمة المرور قصيرة جداً"}
)

// 考勤模块错误。
var (
	QRFormatInvalid           = Definition{Code: "QR_FORMAT_INVALID", Message: "Incorrect QR format", MessageAr: "صيغة رمز QR غير صحيحة"}
	QRCodeInvalid             = Definition{Code: "QR_CODE_INVALID", Message: "Incorrect QR code", MessageAr: "رمز QR غير صحيح"}
	QRCodeExpired             = Definition{Code: "QR_CODE_EXPIRED", Message: "QR code expired, scan today's current code", MessageAr: "رمز QR منتهي الصلاحية، يرجى مسح الرمز اليومي الحالي"}
	AttendanceAlreadyRecorded = Definition{Code: "ATTENDANCE_ALREADY_RECORDED", Message: "Attendance already recorded today", MessageAr: "تم تسجيل الحضور لهذا اليوم بالفعل"}
	WorkerNotFound            = Definition{Code: "WORKER_NOT_FOUND", Message: "Worker not found", MessageAr: "الموظف غير موجود"}
	AttendanceMethodInvalid   = Definition{Code: "ATTENDANCE_METHOD_INVALID", Message: "Attendance method must be qr or manual", MessageAr: "طريقة تسجيل الحضور غير صالحة"}
)

// 商品/订单/发票模块错误。
var (
	ProductNotFound    = Definition{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", MessageAr: "المنتج غير موجود"}
	OrderNotFound      = Definition{Code: "ORDER_NOT_FOUND", Message: "Order not found", MessageAr: "الطلب غير موجود"}
	OrderStatusInvalid = Definition{Code: "ORDER_STATUS_INVALID", Message: "Invalid order status", MessageAr: "حالة الطلب غير صالحة"}
	InvoiceNotFound    = Definition{Code: "INVOICE_NOT_FOUND", Message: "Invoice not found", MessageAr: "الفاتورة غير موجودة"}
	CustomerNotFound   = Definition{Code: "CUSTOMER_NOT_FOUND", Message: "Customer not found", MessageAr: "العميل غير موجود"}
	WorkerEmailTaken   = Definition{Code: "WORKER_EMAIL_TAKEN", Message: "Email already registered", MessageAr: "البريد الإلكتروني مسجل بالفعل"}
)

// 管理操作错误。
var (
	CollectionInvalid = Definition{Code: "COLLECTION_INVALID", Message: "Invalid collection", MessageAr: "مجموعة غير صالحة"}
	UploadTooLarge    = Definition{Code: "UPLOAD_TOO_LARGE", Message: "File too large", MessageAr: "حجم الملف كبير جداً"}
	UploadTypeInvalid = Definition{Code: "UPLOAD_TYPE_INVALID", Message: "Unsupported file type", MessageAr: "نوع الملف غير مدعوم"}
	RateLimited       = Definition{Code: "RATE_LIMITED", Message: "Too many requests, try again later", MessageAr: "طلبات كثيرة جداً، حاول لاحقاً"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:              Unauthorized,
	InvalidCredentials.Code:        InvalidCredentials,
	AccountInactive.Code:           AccountInactive,
	PageForbidden.Code:             PageForbidden,
	PasswordTooShort.Code:          PasswordTooShort,
	QRFormatInvalid.Code:           QRFormatInvalid,
	QRCodeInvalid.Code:             QRCodeInvalid,
	QRCodeExpired.Code:             QRCodeExpired,
	AttendanceAlreadyRecorded.Code: AttendanceAlreadyRecorded,
	WorkerNotFound.Code:            WorkerNotFound,
	AttendanceMethodInvalid.Code:   AttendanceMethodInvalid,
	ProductNotFound.Code:           ProductNotFound,
	OrderNotFound.Code:             OrderNotFound,
	OrderStatusInvalid.Code:        OrderStatusInvalid,
	InvoiceNotFound.Code:           InvoiceNotFound,
	CustomerNotFound.Code:          CustomerNotFound,
	WorkerEmailTaken.Code:          WorkerEmailTaken,
	CollectionInvalid.Code:         CollectionInvalid,
	UploadTooLarge.Code:            UploadTooLarge,
	UploadTypeInvalid.Code:         UploadTypeInvalid,
	RateLimited.Code:               RateLimited,
}

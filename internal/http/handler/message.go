package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Notices shown to the user after a redirect.
const (
	noticeBadCredentials     = "Error: incorrect username or password."
	noticeDuplicateUsername  = "Error: username already exists, please choose another one."
	noticeRegistered         = "User registration successful."
	noticeCategoryNotFound   = "Error: category does not exist."
	noticeDuplicateCategory  = "Error: category already exists."
	noticeCategoryNotEmpty   = "Error: category still has products, delete them first."
	noticeCategoryAdded      = "Category added successfully."
	noticeCategoryEdited     = "Category edited successfully."
	noticeCategoryDeleted    = "Category deleted successfully."
	noticeProductNotFound    = "Error: product does not exist."
	noticeProductInUse       = "Error: product is part of an order."
	noticeProductAdded       = "Product added successfully."
	noticeUnitNotFound       = "Error: unit does not exist."
	noticeProductDeleted     = "Product deleted successfully."
	validationNoticeTemplate = "Error: %s"
)
